package deploy

import (
	"fmt"

	"github.com/tessera-labs/stackforge/internal/model"
)

// Dockerfiles are fixed per stack; nothing project-specific appears in
// them, so they are plain constants rather than templates.

const nodeDockerfile = `FROM node:20-alpine

WORKDIR /app

COPY package*.json ./
RUN npm install --omit=dev

COPY src ./src

EXPOSE 3000
CMD ["node", "src/server.js"]
`

const pythonDockerfile = `FROM python:3.12-slim

WORKDIR /app

COPY requirements.txt ./
RUN pip install --no-cache-dir -r requirements.txt

COPY app ./app

EXPOSE 8000
CMD ["uvicorn", "app.main:app", "--host", "0.0.0.0", "--port", "8000"]
`

const dotnetDockerfile = `FROM mcr.microsoft.com/dotnet/sdk:8.0 AS build
WORKDIR /src
COPY . .
RUN dotnet publish -c Release -o /out

FROM mcr.microsoft.com/dotnet/aspnet:8.0
WORKDIR /app
COPY --from=build /out .
ENV ASPNETCORE_URLS=http://+:8080

EXPOSE 8080
ENTRYPOINT ["dotnet", "backend.dll"]
`

const javaDockerfile = `FROM maven:3.9-eclipse-temurin-21 AS build
WORKDIR /src
COPY pom.xml .
RUN mvn -B dependency:go-offline
COPY src ./src
RUN mvn -B package -DskipTests

FROM eclipse-temurin:21-jre
WORKDIR /app
COPY --from=build /src/target/*.jar app.jar

EXPOSE 8080
ENTRYPOINT ["java", "-jar", "app.jar"]
`

const frontendNodeDockerfile = `FROM node:20-alpine

WORKDIR /app

COPY package*.json ./
RUN npm install

COPY . .
RUN npm run build --if-present

EXPOSE %d
CMD ["npm", "run", "dev", "--", "--host", "0.0.0.0"]
`

// backendDockerfile returns the Dockerfile body for a backend stack.
func backendDockerfile(b model.Backend) ([]byte, error) {
	switch b {
	case model.BackendNode:
		return []byte(nodeDockerfile), nil
	case model.BackendPython:
		return []byte(pythonDockerfile), nil
	case model.BackendDotnet:
		return []byte(dotnetDockerfile), nil
	case model.BackendJava:
		return []byte(javaDockerfile), nil
	default:
		return nil, fmt.Errorf("deploy: no Dockerfile for backend %q", b)
	}
}

// frontendDockerfile returns the Dockerfile body for a frontend stack.
// All four frontends are node-based; only the exposed port differs.
func frontendDockerfile(f model.Frontend) []byte {
	return []byte(fmt.Sprintf(frontendNodeDockerfile, frontendPort(f)))
}

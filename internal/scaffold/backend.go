package scaffold

import (
	"fmt"

	"github.com/tessera-labs/stackforge/internal/model"
)

// Backend scaffolds live under backend/ in the generated project.
// Like the frontend trees, each is a minimal runnable skeleton with a
// health endpoint, since every deployment manifest we generate probes one.

const nodePackageJSON = `{
  "name": "{{.Name}}-backend",
  "version": "0.1.0",
  "private": true,
  "type": "module",
  "main": "src/server.js",
  "scripts": {
    "start": "node src/server.js",
    "dev": "node --watch src/server.js"
  },
  "dependencies": {
    "express": "^4.21.0"
  }
}
`

const nodeServerJS = `import express from "express";

const app = express();
const port = process.env.PORT || 3000;

app.use(express.json());

app.get("/health", (_req, res) => {
  res.json({ status: "ok", service: "{{.Name}}" });
});

app.listen(port, () => {
  console.log("{{.Name}} backend listening on port " + port);
});
`

const pythonRequirements = `fastapi>=0.115
uvicorn[standard]>=0.30
`

const pythonMainPy = `from fastapi import FastAPI

app = FastAPI(title="{{.Name}}")


@app.get("/health")
def health() -> dict:
    return {"status": "ok", "service": "{{.Name}}"}
`

const pythonInitPy = ``

const pythonPyproject = `[project]
name = "{{.Name}}-backend"
version = "0.1.0"
requires-python = ">=3.12"
{{if .Author.Name}}authors = [{name = "{{.Author.Name}}"{{if .Author.Email}}, email = "{{.Author.Email}}"{{end}}}]
{{end}}`

const dotnetCsproj = `<Project Sdk="Microsoft.NET.Sdk.Web">

  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
    <Nullable>enable</Nullable>
    <ImplicitUsings>enable</ImplicitUsings>
    <RootNamespace>{{.Name}}</RootNamespace>
  </PropertyGroup>

</Project>
`

const dotnetProgramCs = `var builder = WebApplication.CreateBuilder(args);
var app = builder.Build();

app.MapGet("/health", () => Results.Json(new { status = "ok", service = "{{.Name}}" }));

app.Run();
`

const javaPomXML = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
         xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
  <modelVersion>4.0.0</modelVersion>

  <groupId>com.example</groupId>
  <artifactId>{{.Name}}-backend</artifactId>
  <version>0.1.0</version>
  <packaging>jar</packaging>

  <parent>
    <groupId>org.springframework.boot</groupId>
    <artifactId>spring-boot-starter-parent</artifactId>
    <version>3.3.2</version>
    <relativePath/>
  </parent>

  <properties>
    <java.version>21</java.version>
  </properties>

  <dependencies>
    <dependency>
      <groupId>org.springframework.boot</groupId>
      <artifactId>spring-boot-starter-web</artifactId>
    </dependency>
  </dependencies>
</project>
`

const javaApplicationJava = `package com.example.app;

import org.springframework.boot.SpringApplication;
import org.springframework.boot.autoconfigure.SpringBootApplication;
import org.springframework.web.bind.annotation.GetMapping;
import org.springframework.web.bind.annotation.RestController;

import java.util.Map;

@SpringBootApplication
@RestController
public class Application {

    public static void main(String[] args) {
        SpringApplication.run(Application.class, args);
    }

    @GetMapping("/health")
    public Map<String, String> health() {
        return Map.of("status", "ok", "service", "{{.Name}}");
    }
}
`

// backendFiles returns the rendered backend tree for the spec.
func backendFiles(spec *model.ProjectSpec) ([]File, error) {
	var templates map[string]string

	switch spec.Backend {
	case model.BackendNode:
		templates = map[string]string{
			"backend/package.json":  nodePackageJSON,
			"backend/src/server.js": nodeServerJS,
		}
	case model.BackendPython:
		templates = map[string]string{
			"backend/requirements.txt": pythonRequirements,
			"backend/pyproject.toml":   pythonPyproject,
			"backend/app/__init__.py":  pythonInitPy,
			"backend/app/main.py":      pythonMainPy,
		}
	case model.BackendDotnet:
		templates = map[string]string{
			"backend/backend.csproj": dotnetCsproj,
			"backend/Program.cs":     dotnetProgramCs,
		}
	case model.BackendJava:
		templates = map[string]string{
			"backend/pom.xml": javaPomXML,
			"backend/src/main/java/com/example/app/Application.java": javaApplicationJava,
		}
	default:
		return nil, fmt.Errorf("scaffold: no backend templates for %q", spec.Backend)
	}

	return renderAll(templates, spec)
}

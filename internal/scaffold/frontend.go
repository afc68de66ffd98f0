package scaffold

import (
	"fmt"

	"github.com/tessera-labs/stackforge/internal/model"
)

// Frontend scaffolds live under frontend/ in the generated project.
// Each stack gets a minimal but runnable skeleton: a package manifest,
// an entry point, and one component, in the layout the stack's own
// tooling would produce.

const reactPackageJSON = `{
  "name": "{{.Name}}-frontend",
  "version": "0.1.0",
  "private": true,
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^18.3.0",
    "react-dom": "^18.3.0"
  },
  "devDependencies": {
    "@vitejs/plugin-react": "^4.3.0",
    "vite": "^5.4.0"
  }
}
`

const reactIndexHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Name}}</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.jsx"></script>
  </body>
</html>
`

const reactMainJSX = `import React from "react";
import ReactDOM from "react-dom/client";
import App from "./App.jsx";

ReactDOM.createRoot(document.getElementById("root")).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>
);
`

const reactAppJSX = `export default function App() {
  return (
    <main>
      <h1>{{.Name}}</h1>
      <p>Scaffolded on {{.Date}}.</p>
    </main>
  );
}
`

const vuePackageJSON = `{
  "name": "{{.Name}}-frontend",
  "version": "0.1.0",
  "private": true,
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "vue": "^3.5.0"
  },
  "devDependencies": {
    "@vitejs/plugin-vue": "^5.1.0",
    "vite": "^5.4.0"
  }
}
`

const vueIndexHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Name}}</title>
  </head>
  <body>
    <div id="app"></div>
    <script type="module" src="/src/main.js"></script>
  </body>
</html>
`

const vueMainJS = `import { createApp } from "vue";
import App from "./App.vue";

createApp(App).mount("#app");
`

const vueAppVue = `<script setup>
const projectName = "{{.Name}}";
</script>

<template>
  <main>
    <h1>{{"{{ projectName }}"}}</h1>
    <p>Scaffolded on {{.Date}}.</p>
  </main>
</template>
`

const angularPackageJSON = `{
  "name": "{{.Name}}-frontend",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "start": "ng serve",
    "build": "ng build",
    "test": "ng test"
  },
  "dependencies": {
    "@angular/common": "^18.2.0",
    "@angular/compiler": "^18.2.0",
    "@angular/core": "^18.2.0",
    "@angular/platform-browser": "^18.2.0",
    "rxjs": "^7.8.0",
    "zone.js": "^0.14.0"
  },
  "devDependencies": {
    "@angular/cli": "^18.2.0",
    "@angular-devkit/build-angular": "^18.2.0",
    "typescript": "^5.5.0"
  }
}
`

const angularMainTS = `import { bootstrapApplication } from "@angular/platform-browser";
import { AppComponent } from "./app/app.component";

bootstrapApplication(AppComponent).catch((err) => console.error(err));
`

const angularAppComponentTS = `import { Component } from "@angular/core";

@Component({
  selector: "app-root",
  standalone: true,
  template: ` + "`" + `
    <main>
      <h1>{{.Name}}</h1>
      <p>Scaffolded on {{.Date}}.</p>
    </main>
  ` + "`" + `,
})
export class AppComponent {}
`

const nextPackageJSON = `{
  "name": "{{.Name}}-frontend",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "next dev",
    "build": "next build",
    "start": "next start"
  },
  "dependencies": {
    "next": "^14.2.0",
    "react": "^18.3.0",
    "react-dom": "^18.3.0"
  }
}
`

const nextLayoutJSX = `export const metadata = {
  title: "{{.Name}}",
};

export default function RootLayout({ children }) {
  return (
    <html lang="en">
      <body>{children}</body>
    </html>
  );
}
`

const nextPageJSX = `export default function Home() {
  return (
    <main>
      <h1>{{.Name}}</h1>
      <p>Scaffolded on {{.Date}}.</p>
    </main>
  );
}
`

// frontendFiles returns the rendered frontend tree for the spec.
func frontendFiles(spec *model.ProjectSpec) ([]File, error) {
	var templates map[string]string

	switch spec.Frontend {
	case model.FrontendReact:
		templates = map[string]string{
			"frontend/package.json": reactPackageJSON,
			"frontend/index.html":   reactIndexHTML,
			"frontend/src/main.jsx": reactMainJSX,
			"frontend/src/App.jsx":  reactAppJSX,
		}
	case model.FrontendVue:
		templates = map[string]string{
			"frontend/package.json": vuePackageJSON,
			"frontend/index.html":   vueIndexHTML,
			"frontend/src/main.js":  vueMainJS,
			"frontend/src/App.vue":  vueAppVue,
		}
	case model.FrontendAngular:
		templates = map[string]string{
			"frontend/package.json":             angularPackageJSON,
			"frontend/src/main.ts":              angularMainTS,
			"frontend/src/app/app.component.ts": angularAppComponentTS,
		}
	case model.FrontendNextJS:
		templates = map[string]string{
			"frontend/package.json":   nextPackageJSON,
			"frontend/app/layout.jsx": nextLayoutJSX,
			"frontend/app/page.jsx":   nextPageJSX,
		}
	default:
		return nil, fmt.Errorf("scaffold: no frontend templates for %q", spec.Frontend)
	}

	return renderAll(templates, spec)
}

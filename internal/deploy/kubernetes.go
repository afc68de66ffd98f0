package deploy

import (
	"fmt"

	"github.com/tessera-labs/stackforge/internal/model"
)

// Minimal Kubernetes object structures. Only the fields the generated
// manifests use are modeled; this is generation, not a client.

type k8sMetadata struct {
	Name      string            `yaml:"name"`
	Namespace string            `yaml:"namespace,omitempty"`
	Labels    map[string]string `yaml:"labels,omitempty"`
}

type k8sDeployment struct {
	APIVersion string            `yaml:"apiVersion"`
	Kind       string            `yaml:"kind"`
	Metadata   k8sMetadata       `yaml:"metadata"`
	Spec       k8sDeploymentSpec `yaml:"spec"`
}

type k8sDeploymentSpec struct {
	Replicas int             `yaml:"replicas"`
	Selector k8sSelector     `yaml:"selector"`
	Template k8sPodTemplate  `yaml:"template"`
}

type k8sSelector struct {
	MatchLabels map[string]string `yaml:"matchLabels"`
}

type k8sPodTemplate struct {
	Metadata k8sMetadata `yaml:"metadata"`
	Spec     k8sPodSpec  `yaml:"spec"`
}

type k8sPodSpec struct {
	Containers []k8sContainer `yaml:"containers"`
}

type k8sContainer struct {
	Name    string             `yaml:"name"`
	Image   string             `yaml:"image"`
	Ports   []k8sContainerPort `yaml:"ports,omitempty"`
	EnvFrom []k8sEnvFrom       `yaml:"envFrom,omitempty"`
}

type k8sContainerPort struct {
	ContainerPort int `yaml:"containerPort"`
}

type k8sEnvFrom struct {
	ConfigMapRef k8sRef `yaml:"configMapRef"`
}

type k8sRef struct {
	Name string `yaml:"name"`
}

type k8sService struct {
	APIVersion string         `yaml:"apiVersion"`
	Kind       string         `yaml:"kind"`
	Metadata   k8sMetadata    `yaml:"metadata"`
	Spec       k8sServiceSpec `yaml:"spec"`
}

type k8sServiceSpec struct {
	Selector map[string]string `yaml:"selector"`
	Ports    []k8sServicePort  `yaml:"ports"`
	Type     string            `yaml:"type,omitempty"`
}

type k8sServicePort struct {
	Port       int    `yaml:"port"`
	TargetPort int    `yaml:"targetPort"`
	Protocol   string `yaml:"protocol,omitempty"`
}

type k8sConfigMap struct {
	APIVersion string            `yaml:"apiVersion"`
	Kind       string            `yaml:"kind"`
	Metadata   k8sMetadata       `yaml:"metadata"`
	Data       map[string]string `yaml:"data"`
}

// renderKubernetes generates Deployment, Service, and ConfigMap
// manifests under deploy/k8s/ for the project's primary service: the
// backend when one is selected, the frontend otherwise.
func renderKubernetes(spec *model.ProjectSpec) ([]Manifest, error) {
	appName := spec.Name
	labels := map[string]string{"app": appName}

	port := frontendPort(spec.Frontend)
	if spec.Backend != "" {
		port = backendPort(spec.Backend)
	}

	// The image reference is a placeholder: the cluster registry path is
	// an operational concern the scaffold cannot know.
	image := fmt.Sprintf("registry.example.com/%s:latest", appName)

	deployment := k8sDeployment{
		APIVersion: "apps/v1",
		Kind:       "Deployment",
		Metadata:   k8sMetadata{Name: appName, Labels: labels},
		Spec: k8sDeploymentSpec{
			Replicas: 2,
			Selector: k8sSelector{MatchLabels: labels},
			Template: k8sPodTemplate{
				Metadata: k8sMetadata{Labels: labels},
				Spec: k8sPodSpec{
					Containers: []k8sContainer{{
						Name:    appName,
						Image:   image,
						Ports:   []k8sContainerPort{{ContainerPort: port}},
						EnvFrom: []k8sEnvFrom{{ConfigMapRef: k8sRef{Name: appName + "-config"}}},
					}},
				},
			},
		},
	}

	service := k8sService{
		APIVersion: "v1",
		Kind:       "Service",
		Metadata:   k8sMetadata{Name: appName, Labels: labels},
		Spec: k8sServiceSpec{
			Selector: labels,
			Ports:    []k8sServicePort{{Port: 80, TargetPort: port, Protocol: "TCP"}},
			Type:     "ClusterIP",
		},
	}

	configData := map[string]string{}
	if spec.Database != "" {
		// Connection details point at an in-cluster database service;
		// secrets stay out of the ConfigMap on purpose.
		configData["DATABASE_HOST"] = appName + "-db"
		if p := databasePort(spec.Database); p > 0 {
			configData["DATABASE_PORT"] = fmt.Sprintf("%d", p)
		}
		configData["DATABASE_NAME"] = appName
	}
	configMap := k8sConfigMap{
		APIVersion: "v1",
		Kind:       "ConfigMap",
		Metadata:   k8sMetadata{Name: appName + "-config", Labels: labels},
		Data:       configData,
	}

	var manifests []Manifest
	for _, doc := range []struct {
		path string
		obj  any
	}{
		{"deploy/k8s/deployment.yaml", deployment},
		{"deploy/k8s/service.yaml", service},
		{"deploy/k8s/configmap.yaml", configMap},
	} {
		body, err := marshalWithHeader(spec.Name, doc.obj)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, Manifest{Path: doc.path, Content: body})
	}

	return manifests, nil
}

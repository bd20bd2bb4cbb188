package synth

import "github.com/pipeshift/pipeshift/internal/domain"

// jobMutator translates one detected feature into target-document edits.
// Mutators run in table order over the shared builder, so applying the same
// hit set always yields the same document.
type jobMutator struct {
	key   string
	apply func(b *builder)
}

var jobMutators = []jobMutator{
	{"docker", func(b *builder) {
		b.setDefaultImage("docker:27")
		b.addService("docker:27-dind")
		b.setVariable("DOCKER_TLS_CERTDIR", "/certs")
		j := b.ensureJob("docker-build", b.stageOr("build"))
		j.Script = append(j.Script,
			"docker build -t $CI_REGISTRY_IMAGE:$CI_COMMIT_SHORT_SHA .",
			"docker push $CI_REGISTRY_IMAGE:$CI_COMMIT_SHORT_SHA",
		)
	}},
	{"maven", func(b *builder) {
		j := b.ensureJob("maven-build", b.stageOr("build"))
		j.Image = "maven:3.9-eclipse-temurin-17"
		j.Script = append(j.Script, "mvn -B -DskipTests package")
		j.Artifacts = &domain.ArtifactsSpec{Paths: []string{"target/"}}
		t := b.ensureJob("maven-test", b.stageOr("test"))
		t.Image = "maven:3.9-eclipse-temurin-17"
		t.Script = append(t.Script, "mvn -B test")
	}},
	{"gradle", func(b *builder) {
		j := b.ensureJob("gradle-build", b.stageOr("build"))
		j.Image = "gradle:8-jdk17"
		j.Script = append(j.Script, "gradle --no-daemon build")
		j.Artifacts = &domain.ArtifactsSpec{Paths: []string{"build/libs/"}}
	}},
	{"nodejs", func(b *builder) {
		j := b.ensureJob("node-build", b.stageOr("build"))
		j.Image = "node:20"
		j.Script = append(j.Script, "npm ci", "npm run build --if-present")
		t := b.ensureJob("node-test", b.stageOr("test"))
		t.Image = "node:20"
		t.Script = append(t.Script, "npm ci", "npm test")
	}},
	{"python", func(b *builder) {
		j := b.ensureJob("python-test", b.stageOr("test"))
		j.Image = "python:3.12"
		j.Script = append(j.Script, "pip install -r requirements.txt", "pytest")
	}},
	{"golang", func(b *builder) {
		j := b.ensureJob("go-test", b.stageOr("test"))
		j.Image = "golang:1.24"
		j.Script = append(j.Script, "go build ./...", "go test ./...")
	}},
	{"msbuild", func(b *builder) {
		j := b.ensureJob("dotnet-build", b.stageOr("build"))
		j.Image = "mcr.microsoft.com/dotnet/sdk:8.0"
		j.Script = append(j.Script, "dotnet build --configuration Release", "dotnet test")
	}},
	{"junit", func(b *builder) {
		j := b.ensureJob("unit-tests", b.stageOr("test"))
		if len(j.Script) == 0 {
			j.Script = append(j.Script, "echo 'wire the test command for your build tool here'")
		}
		if j.Artifacts == nil {
			j.Artifacts = &domain.ArtifactsSpec{}
		}
		if j.Artifacts.Reports == nil {
			j.Artifacts.Reports = make(map[string]string)
		}
		j.Artifacts.Reports["junit"] = "**/TEST-*.xml"
		j.Artifacts.When = "always"
	}},
	{"jacoco", func(b *builder) {
		j := b.ensureJob("unit-tests", b.stageOr("test"))
		j.Coverage = `/Total.*?([0-9]{1,3})%/`
		if len(j.Script) == 0 {
			j.Script = append(j.Script, "echo 'wire the coverage-producing test command here'")
		}
	}},
	{"cobertura", func(b *builder) {
		j := b.ensureJob("unit-tests", b.stageOr("test"))
		if len(j.Script) == 0 {
			j.Script = append(j.Script, "echo 'wire the coverage-producing test command here'")
		}
		if j.Artifacts == nil {
			j.Artifacts = &domain.ArtifactsSpec{}
		}
		if j.Artifacts.Reports == nil {
			j.Artifacts.Reports = make(map[string]string)
		}
		j.Artifacts.Reports["coverage_report"] = "coverage.xml"
	}},
	{"publish-html", func(b *builder) {
		j := b.ensureJob("unit-tests", b.stageOr("test"))
		if j.Artifacts == nil {
			j.Artifacts = &domain.ArtifactsSpec{}
		}
		j.Artifacts.Paths = appendUnique(j.Artifacts.Paths, "reports/")
	}},
	{"sonarqube", func(b *builder) {
		j := b.ensureJob("sonarqube-scan", b.stageOr("quality", "test"))
		j.Image = "sonarsource/sonar-scanner-cli:latest"
		j.Script = append(j.Script, "sonar-scanner -Dsonar.host.url=$SONAR_HOST_URL")
	}},
	{"checkstyle", func(b *builder) {
		b.appendScript("code-quality", b.stageOr("quality", "test"),
			"echo 'run the linter matching your build tool here'")
	}},
	{"checkmarx", func(b *builder) {
		j := b.ensureJob("sast", b.stageOr("security", "test"))
		j.Script = append(j.Script, "echo 'enable the GitLab SAST template: Security/SAST.gitlab-ci.yml'")
	}},
	{"dependency-check", func(b *builder) {
		j := b.ensureJob("dependency-scanning", b.stageOr("security", "test"))
		j.Script = append(j.Script, "echo 'enable the GitLab Dependency-Scanning template'")
	}},
	{"trivy", func(b *builder) {
		j := b.ensureJob("container-scanning", b.stageOr("security", "test"))
		j.Image = "aquasec/trivy:latest"
		j.Script = append(j.Script, "trivy image --exit-code 1 $CI_REGISTRY_IMAGE:$CI_COMMIT_SHORT_SHA")
	}},
	{"kubernetes", func(b *builder) {
		j := b.ensureJob("deploy-kubernetes", b.stageOr("deploy"))
		j.Image = "bitnami/kubectl:latest"
		j.Script = append(j.Script, "kubectl apply -f k8s/")
	}},
	{"helm", func(b *builder) {
		j := b.ensureJob("deploy-helm", b.stageOr("deploy"))
		j.Image = "alpine/helm:latest"
		j.Script = append(j.Script, "helm upgrade --install $CI_PROJECT_NAME ./chart")
	}},
	{"ansible", func(b *builder) {
		j := b.ensureJob("deploy-ansible", b.stageOr("deploy"))
		j.Image = "willhallonline/ansible:latest"
		j.Script = append(j.Script, "ansible-playbook -i inventory deploy.yml")
	}},
	{"terraform", func(b *builder) {
		j := b.ensureJob("deploy-terraform", b.stageOr("deploy"))
		j.Image = "hashicorp/terraform:latest"
		j.Script = append(j.Script, "terraform init", "terraform apply -auto-approve")
	}},
	{"aws-steps", func(b *builder) {
		j := b.ensureJob("deploy-aws", b.stageOr("deploy"))
		j.Image = "amazon/aws-cli:latest"
		j.Script = append(j.Script, "echo 'wire the aws deployment command here'")
	}},
	{"artifactory", func(b *builder) {
		b.appendScript("publish-artifacts", b.stageOr("deploy", "build"),
			"echo 'push build outputs to your artifact repository'")
	}},
	{"nexus", func(b *builder) {
		b.appendScript("publish-artifacts", b.stageOr("deploy", "build"),
			"echo 'push build outputs to your artifact repository'")
	}},
	{"archive-artifacts", func(b *builder) {
		j := b.ensureJob("package", b.stageOr("build"))
		if len(j.Script) == 0 {
			j.Script = append(j.Script, "echo 'collect build outputs'")
		}
		if j.Artifacts == nil {
			j.Artifacts = &domain.ArtifactsSpec{}
		}
		j.Artifacts.Paths = appendUnique(j.Artifacts.Paths, "dist/")
	}},
	{"slack", func(b *builder) {
		j := b.ensureJob("notify", b.stageOr("verify", "deploy", "test"))
		j.Script = append(j.Script, `curl -X POST -H 'Content-type: application/json' --data "{\"text\":\"$CI_PROJECT_NAME pipeline $CI_PIPELINE_STATUS\"}" $SLACK_WEBHOOK_URL`)
		j.When = "always"
	}},
	{"git-scm", func(b *builder) {
		b.setVariable("GIT_DEPTH", "50")
	}},
	{"timestamps", func(b *builder) {
		b.setVariable("FF_TIMESTAMPS", "true")
	}},
	// input-approval runs last: it flips every deploy-stage job to manual,
	// regardless of which earlier mutator registered the job.
	{"input-approval", func(b *builder) {
		b.eachJobInStage("deploy", func(j *domain.JobSpec) {
			j.When = "manual"
		})
	}},
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

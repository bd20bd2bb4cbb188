package scan

import (
	"regexp"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// featurePattern binds one feature key to the regular expression that detects
// it in raw Jenkins pipeline text. The table order is the reporting order.
type featurePattern struct {
	key         string
	displayName string
	category    domain.FeatureCategory
	re          *regexp.Regexp
}

// Root-construct markers. A pipeline can match both (shared libraries often
// wrap declarative blocks in node allocations); scripted dominates for tiering.
var (
	declarativeRoot = regexp.MustCompile(`(?m)^\s*pipeline\s*\{`)
	scriptedRoot    = regexp.MustCompile(`(?m)\bnode\b\s*[({]`)
)

// featurePatterns is the ordered detection table. Keys line up with the
// compatibility knowledge catalog; a key missing from the catalog still gets
// an unknown-status verdict downstream.
var featurePatterns = []featurePattern{
	{"docker", "Docker Pipeline", domain.CategoryBuild,
		regexp.MustCompile(`agent\s*\{\s*docker|docker\s*\{|docker\.(build|image|withRegistry)|dockerfile\s+(true|\{)`)},
	{"maven", "Maven", domain.CategoryBuild,
		regexp.MustCompile(`\bmvn\b|withMaven|tool\s+['"]?[Mm]aven`)},
	{"gradle", "Gradle", domain.CategoryBuild,
		regexp.MustCompile(`\bgradlew?\b`)},
	{"nodejs", "NodeJS", domain.CategoryBuild,
		regexp.MustCompile(`\bnpm\b|\byarn\b|\bnodejs\b`)},
	{"python", "Python", domain.CategoryBuild,
		regexp.MustCompile(`\bpip3?\b|\bpytest\b|\bvirtualenv\b`)},
	{"golang", "Go", domain.CategoryBuild,
		regexp.MustCompile(`\bgo (build|test|vet)\b`)},
	{"msbuild", "MSBuild", domain.CategoryBuild,
		regexp.MustCompile(`\bmsbuild\b|\bdotnet (build|test|publish)\b`)},
	{"junit", "JUnit Results", domain.CategoryTest,
		regexp.MustCompile(`\bjunit\b`)},
	{"jacoco", "JaCoCo Coverage", domain.CategoryTest,
		regexp.MustCompile(`\bjacoco\b`)},
	{"cobertura", "Cobertura Coverage", domain.CategoryTest,
		regexp.MustCompile(`\bcobertura\b`)},
	{"publish-html", "HTML Report Publisher", domain.CategoryTest,
		regexp.MustCompile(`publishHTML`)},
	{"sonarqube", "SonarQube Scanner", domain.CategoryQuality,
		regexp.MustCompile(`withSonarQubeEnv|sonar-scanner|\bsonarqube\b`)},
	{"checkstyle", "Checkstyle", domain.CategoryQuality,
		regexp.MustCompile(`\bcheckstyle\b|recordIssues`)},
	{"findbugs", "FindBugs", domain.CategoryQuality,
		regexp.MustCompile(`\bfindbugs\b`)},
	{"checkmarx", "Checkmarx Scan", domain.CategorySecurity,
		regexp.MustCompile(`\bcheckmarx\b|checkmarxScan`)},
	{"dependency-check", "OWASP Dependency-Check", domain.CategorySecurity,
		regexp.MustCompile(`dependencyCheck|dependency-check`)},
	{"trivy", "Trivy Scan", domain.CategorySecurity,
		regexp.MustCompile(`\btrivy\b`)},
	{"credentials-binding", "Credentials Binding", domain.CategoryCredentials,
		regexp.MustCompile(`withCredentials|credentials\s*\(`)},
	{"ssh-agent", "SSH Agent", domain.CategoryCredentials,
		regexp.MustCompile(`\bsshagent\b`)},
	{"vault", "HashiCorp Vault", domain.CategoryCredentials,
		regexp.MustCompile(`withVault|vaultSecrets?\b`)},
	{"kubernetes", "Kubernetes Deploy", domain.CategoryDeploy,
		regexp.MustCompile(`kubernetesDeploy|\bkubectl\b|kubeconfig`)},
	{"helm", "Helm", domain.CategoryDeploy,
		regexp.MustCompile(`\bhelm\b`)},
	{"ansible", "Ansible", domain.CategoryDeploy,
		regexp.MustCompile(`ansiblePlaybook|ansible-playbook`)},
	{"terraform", "Terraform", domain.CategoryDeploy,
		regexp.MustCompile(`\bterraform\b`)},
	{"aws-steps", "AWS Steps", domain.CategoryDeploy,
		regexp.MustCompile(`withAWS|\baws (s3|ecr|ecs|eks)\b`)},
	{"artifactory", "Artifactory", domain.CategoryArtifact,
		regexp.MustCompile(`\brtUpload\b|\brtServer\b|\bartifactory\b`)},
	{"nexus", "Nexus Uploader", domain.CategoryArtifact,
		regexp.MustCompile(`nexusArtifactUploader|\bnexus\b`)},
	{"archive-artifacts", "Archive Artifacts", domain.CategoryArtifact,
		regexp.MustCompile(`archiveArtifacts`)},
	{"stash", "Stash/Unstash", domain.CategoryArtifact,
		regexp.MustCompile(`\bstash\b|\bunstash\b`)},
	{"fingerprint", "Artifact Fingerprinting", domain.CategoryArtifact,
		regexp.MustCompile(`\bfingerprint\b`)},
	{"slack", "Slack Notifications", domain.CategoryNotify,
		regexp.MustCompile(`slackSend`)},
	{"email-ext", "Extended Email", domain.CategoryNotify,
		regexp.MustCompile(`\bemailext\b`)},
	{"mailer", "Mailer", domain.CategoryNotify,
		regexp.MustCompile(`\bmail\s+(to|subject):`)},
	{"git-scm", "Git SCM", domain.CategorySCM,
		regexp.MustCompile(`checkout\s+scm|checkout\s*\(|git\s+(url|branch):`)},
	{"parallel", "Parallel Stages", domain.CategoryFlow,
		regexp.MustCompile(`parallel\s*[({]`)},
	{"matrix", "Matrix Builds", domain.CategoryFlow,
		regexp.MustCompile(`matrix\s*\{`)},
	{"input-approval", "Manual Input Gate", domain.CategoryFlow,
		regexp.MustCompile(`input\s+message|input\s*[({]`)},
	{"when-conditions", "Conditional Stages", domain.CategoryFlow,
		regexp.MustCompile(`when\s*\{`)},
	{"post-actions", "Post Actions", domain.CategoryFlow,
		regexp.MustCompile(`post\s*\{`)},
	{"lockable-resources", "Lockable Resources", domain.CategoryFlow,
		regexp.MustCompile(`lock\s*\(`)},
	{"milestone", "Milestone Step", domain.CategoryFlow,
		regexp.MustCompile(`milestone\s*\(`)},
	{"downstream-build", "Downstream Builds", domain.CategoryFlow,
		regexp.MustCompile(`build\s+job:`)},
	{"timeout-wrapper", "Timeout Wrapper", domain.CategoryFlow,
		regexp.MustCompile(`timeout\s*\(`)},
	{"retry-wrapper", "Retry Wrapper", domain.CategoryFlow,
		regexp.MustCompile(`retry\s*\(`)},
	{"cron-trigger", "Cron Trigger", domain.CategoryTrigger,
		regexp.MustCompile(`cron\s*\(|triggers\s*\{|pollSCM`)},
	{"parameters", "Build Parameters", domain.CategoryTrigger,
		regexp.MustCompile(`parameters\s*\{|booleanParam\s*\(|choice\s*\(`)},
	{"environment-block", "Environment Block", domain.CategoryEnvironment,
		regexp.MustCompile(`environment\s*\{`)},
	{"with-env", "withEnv Wrapper", domain.CategoryEnvironment,
		regexp.MustCompile(`withEnv\s*\(`)},
	{"tools-block", "Tools Block", domain.CategoryEnvironment,
		regexp.MustCompile(`tools\s*\{`)},
	{"timestamps", "Timestamps", domain.CategoryEnvironment,
		regexp.MustCompile(`\btimestamps\b`)},
	{"ansicolor", "AnsiColor", domain.CategoryEnvironment,
		regexp.MustCompile(`ansiColor`)},
}

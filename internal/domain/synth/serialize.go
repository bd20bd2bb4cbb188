package synth

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// TimestampPrefix marks the generation-timestamp comment line. It is the only
// line excluded from output equality.
const TimestampPrefix = "# generated-at:"

// Serialize renders the document as .gitlab-ci.yml text. Apart from the
// timestamp comment, output depends only on the document: variables are
// emitted in sorted key order and jobs in their registration order.
func Serialize(doc domain.TargetDocument) string {
	var b strings.Builder
	b.WriteString("# Migrated from a Jenkins pipeline by pipeshift.\n")
	fmt.Fprintf(&b, "%s %s\n", TimestampPrefix, time.Now().UTC().Format(time.RFC3339))
	if len(doc.RequiredVariables) > 0 {
		fmt.Fprintf(&b, "# Requires CI/CD variables (provisioned outside this file): %s\n",
			strings.Join(doc.RequiredVariables, ", "))
	}
	b.WriteByte('\n')

	root := mapping()
	appendPair(root, "stages", seq(doc.Stages))
	if doc.DefaultImage != "" {
		appendPair(root, "image", scalar(doc.DefaultImage))
	}
	if len(doc.Services) > 0 {
		appendPair(root, "services", seq(doc.Services))
	}
	if len(doc.Variables) > 0 {
		vars := mapping()
		for _, k := range sortedKeys(doc.Variables) {
			appendPair(vars, k, scalar(doc.Variables[k]))
		}
		appendPair(root, "variables", vars)
	}
	for _, name := range doc.JobOrder {
		appendPair(root, name, jobNode(doc.Jobs[name]))
	}

	out, err := yaml.Marshal(root)
	if err != nil {
		// The node tree is built from plain strings; marshaling it cannot
		// fail for any document this package produces.
		panic(fmt.Sprintf("serializing target document: %v", err))
	}
	b.Write(out)
	return b.String()
}

func jobNode(job domain.JobSpec) *yaml.Node {
	n := mapping()
	appendPair(n, "stage", scalar(job.Stage))
	if job.Image != "" {
		appendPair(n, "image", scalar(job.Image))
	}
	if len(job.Services) > 0 {
		appendPair(n, "services", seq(job.Services))
	}
	if len(job.BeforeScript) > 0 {
		appendPair(n, "before_script", seq(job.BeforeScript))
	}
	appendPair(n, "script", seq(job.Script))
	if job.Artifacts != nil {
		appendPair(n, "artifacts", artifactsNode(*job.Artifacts))
	}
	if job.When != "" {
		appendPair(n, "when", scalar(job.When))
	}
	if job.Coverage != "" {
		appendPair(n, "coverage", scalar(job.Coverage))
	}
	return n
}

func artifactsNode(a domain.ArtifactsSpec) *yaml.Node {
	n := mapping()
	if len(a.Paths) > 0 {
		appendPair(n, "paths", seq(a.Paths))
	}
	if len(a.Reports) > 0 {
		reports := mapping()
		for _, k := range sortedKeys(a.Reports) {
			appendPair(reports, k, scalar(a.Reports[k]))
		}
		appendPair(n, "reports", reports)
	}
	if a.When != "" {
		appendPair(n, "when", scalar(a.When))
	}
	return n
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}

func seq(vals []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, v := range vals {
		n.Content = append(n.Content, scalar(v))
	}
	return n
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package synth_test

import (
	"testing"

	"github.com/pipeshift/pipeshift/internal/domain"
	"github.com/pipeshift/pipeshift/internal/domain/synth"
	"github.com/stretchr/testify/assert"
)

func validDoc() domain.TargetDocument {
	return domain.TargetDocument{
		Stages: []string{"build", "test"},
		Jobs: map[string]domain.JobSpec{
			"compile": {Stage: "build", Script: []string{"make"}},
		},
		JobOrder: []string{"compile"},
	}
}

func TestValidateDocument_Valid(t *testing.T) {
	v := synth.ValidateDocument(validDoc())

	assert.True(t, v.Valid)
	assert.Empty(t, v.Errors)
}

func TestValidateDocument_NoStages(t *testing.T) {
	doc := validDoc()
	doc.Stages = nil

	v := synth.ValidateDocument(doc)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, "document has no stages")
}

func TestValidateDocument_NoJobs(t *testing.T) {
	doc := validDoc()
	doc.Jobs = nil
	doc.JobOrder = nil

	v := synth.ValidateDocument(doc)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, "document has no jobs")
}

func TestValidateDocument_DuplicateStage(t *testing.T) {
	doc := validDoc()
	doc.Stages = []string{"build", "build"}

	v := synth.ValidateDocument(doc)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, `duplicate stage "build"`)
}

func TestValidateDocument_JobInUndeclaredStage(t *testing.T) {
	doc := validDoc()
	doc.Jobs["compile"] = domain.JobSpec{Stage: "release", Script: []string{"make"}}

	v := synth.ValidateDocument(doc)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, `job "compile" references stage "release" which is not declared`)
}

func TestValidateDocument_EmptyScript(t *testing.T) {
	doc := validDoc()
	doc.Jobs["compile"] = domain.JobSpec{Stage: "build"}

	v := synth.ValidateDocument(doc)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, `job "compile" has an empty script`)
}

func TestValidateDocument_OrderMismatch(t *testing.T) {
	doc := validDoc()
	doc.JobOrder = []string{"compile", "ghost"}

	v := synth.ValidateDocument(doc)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, `job order references unknown job "ghost"`)
	assert.Contains(t, v.Errors, "job order does not cover every job")
}

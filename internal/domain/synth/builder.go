package synth

import "github.com/pipeshift/pipeshift/internal/domain"

// builder accumulates the target document while mutators run. Jobs are held
// as pointers so mutators can append to existing jobs; finalize converts to
// the immutable value form.
type builder struct {
	stages   []string
	stageSet map[string]bool
	image    string
	services []string
	vars     map[string]string
	jobs     map[string]*domain.JobSpec
	order    []string
}

func newBuilder(stages []string) *builder {
	set := make(map[string]bool, len(stages))
	for _, s := range stages {
		set[s] = true
	}
	return &builder{
		stages:   stages,
		stageSet: set,
		vars:     make(map[string]string),
		jobs:     make(map[string]*domain.JobSpec),
	}
}

// stageOr returns the first available stage from the preference list; if none
// is in the chosen stage set, it falls back to the last chosen stage so the
// document always validates.
func (b *builder) stageOr(preferred ...string) string {
	for _, s := range preferred {
		if b.stageSet[s] {
			return s
		}
	}
	return b.stages[len(b.stages)-1]
}

func (b *builder) setDefaultImage(img string) { b.image = img }

func (b *builder) addService(svc string) {
	for _, s := range b.services {
		if s == svc {
			return
		}
	}
	b.services = append(b.services, svc)
}

func (b *builder) setVariable(key, value string) { b.vars[key] = value }

// ensureJob registers a job on its first use and returns it for mutation.
func (b *builder) ensureJob(name, stage string) *domain.JobSpec {
	if j, ok := b.jobs[name]; ok {
		return j
	}
	j := &domain.JobSpec{Stage: stage}
	b.jobs[name] = j
	b.order = append(b.order, name)
	return j
}

func (b *builder) appendScript(name, stage string, lines ...string) {
	j := b.ensureJob(name, stage)
	j.Script = append(j.Script, lines...)
}

// eachJobInStage mutates every registered job bound to stage, in order.
func (b *builder) eachJobInStage(stage string, fn func(*domain.JobSpec)) {
	for _, name := range b.order {
		if j := b.jobs[name]; j.Stage == stage {
			fn(j)
		}
	}
}

func (b *builder) finalize() domain.TargetDocument {
	jobs := make(map[string]domain.JobSpec, len(b.jobs))
	for name, j := range b.jobs {
		jobs[name] = *j
	}
	doc := domain.TargetDocument{
		Stages:       b.stages,
		DefaultImage: b.image,
		Services:     b.services,
		Jobs:         jobs,
		JobOrder:     b.order,
	}
	if len(b.vars) > 0 {
		doc.Variables = b.vars
	}
	return doc
}

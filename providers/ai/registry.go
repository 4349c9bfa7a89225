package ai

import (
	"fmt"
	"sort"

	"github.com/leofalp/jsonalchemist/core/repair"
	"github.com/leofalp/jsonalchemist/core/settings"
	"github.com/leofalp/jsonalchemist/providers/ai/gemini"
	"github.com/leofalp/jsonalchemist/providers/ai/openai"
)

// Registry maps provider tags to providers. The zero value is empty and
// ready to use.
type Registry struct {
	providers map[settings.ProviderTag]repair.Provider
}

// NewRegistry returns a registry holding the managed Gemini provider, built
// from the environment, and the configurable OpenAI provider.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(settings.ProviderManaged, gemini.New())
	r.Register(settings.ProviderOpenAI, openai.New())
	return r
}

// Register binds p to tag, replacing any previous binding.
func (r *Registry) Register(tag settings.ProviderTag, p repair.Provider) {
	if r.providers == nil {
		r.providers = make(map[settings.ProviderTag]repair.Provider)
	}
	r.providers[tag] = p
}

// Clone returns an independent copy holding the same bindings.
func (r *Registry) Clone() *Registry {
	c := &Registry{}
	for tag, p := range r.providers {
		c.Register(tag, p)
	}
	return c
}

// For returns the provider bound to tag, or a *repair.ConfigError when none
// is.
func (r *Registry) For(tag settings.ProviderTag) (repair.Provider, error) {
	if p, ok := r.providers[tag]; ok {
		return p, nil
	}
	return nil, &repair.ConfigError{Provider: string(tag), Msg: fmt.Sprintf("no repair provider registered for %q", tag)}
}

// Tags lists the registered tags in sorted order.
func (r *Registry) Tags() []settings.ProviderTag {
	tags := make([]settings.ProviderTag, 0, len(r.providers))
	for tag := range r.providers {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

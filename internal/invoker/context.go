package invoker

import (
	"sync"

	"github.com/footprint-tools/botcmd/internal/command"
	"github.com/footprint-tools/botcmd/internal/errors"
)

// TranslationFunc narrows the adaptor's context to the capabilities a
// single command needs.
type TranslationFunc[A any] func(adaptorContext A) any

// ContextTranslator holds one TranslationFunc per command.
type ContextTranslator[A any] struct {
	mu           sync.RWMutex
	translations map[*command.Description]TranslationFunc[A]
}

// NewContextTranslator returns an empty translator.
func NewContextTranslator[A any]() *ContextTranslator[A] {
	return &ContextTranslator[A]{translations: make(map[*command.Description]TranslationFunc[A])}
}

// Register sets the translation for desc. A command can only have one.
func (t *ContextTranslator[A]) Register(desc *command.Description, fn TranslationFunc[A]) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.translations[desc]; exists {
		return errors.Wrapf(errors.ErrDuplicateContextTranslation, "command %q", desc.Summary)
	}
	t.translations[desc] = fn
	return nil
}

// MustRegister is like Register but panics on error.
func (t *ContextTranslator[A]) MustRegister(desc *command.Description, fn TranslationFunc[A]) *ContextTranslator[A] {
	if err := t.Register(desc, fn); err != nil {
		panic(err)
	}
	return t
}

// Translate returns the context desc should run with. Commands without a
// translation receive adaptorContext unchanged.
func (t *ContextTranslator[A]) Translate(desc *command.Description, adaptorContext A) any {
	t.mu.RLock()
	fn, ok := t.translations[desc]
	t.mu.RUnlock()

	if !ok {
		return adaptorContext
	}
	return fn(adaptorContext)
}

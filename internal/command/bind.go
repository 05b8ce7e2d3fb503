package command

import (
	"fmt"

	"github.com/footprint-tools/botcmd/internal/presentation"
)

// Binder binds a partial command's parameters against its stream.
type Binder struct {
	// Renderer renders tokens in error messages. Required.
	Renderer *presentation.TextRenderer
	// Translators, when set, convert tokens that fail a schema into an
	// accepted type.
	Translators *presentation.Translators
	// Promptable enables PromptRequiredError for parameters with a Prompt.
	Promptable bool
}

// binding is the state of one Bind call.
type binding struct {
	*Binder
	partial  *PartialCommand
	stream   *Stream
	keywords map[string]any
}

// Bind reads positional, keyword and rest arguments from partial.Stream.
// Failures are returned as *ArgumentParseError, *UnexpectedArgumentError
// or *PromptRequiredError.
func (b *Binder) Bind(partial *PartialCommand) (*CompleteCommand, error) {
	st := &binding{
		Binder:   b,
		partial:  partial,
		stream:   partial.Stream,
		keywords: make(map[string]any),
	}
	params := partial.Description.Parameters
	start := st.stream.Position()

	args := make([]any, 0, len(params.Positional))
	for i := range params.Positional {
		param := &params.Positional[i]
		if err := st.drainKeywords(); err != nil {
			return nil, err
		}

		next, ok := st.stream.Peek()
		if !ok {
			if param.Prompt != nil && b.Promptable {
				return nil, &PromptRequiredError{
					Message:   fmt.Sprintf("A prompt is required for the parameter %s", param.Name),
					Parameter: param,
					Partial:   partial,
				}
			}
			return nil, &ArgumentParseError{
				Message:   fmt.Sprintf("An argument for the parameter %s was expected but was not provided.", param.Name),
				Parameter: param,
				Partial:   partial,
				Position:  st.stream.Position(),
			}
		}

		accepted, err := st.accept(param, next)
		if err != nil {
			return nil, err
		}
		args = append(args, accepted.Object())
		st.stream.Read()
	}

	rest, restStart, err := st.bindRest(params.Rest)
	if err != nil {
		return nil, err
	}

	end := restStart
	if end < 0 {
		end = st.stream.Position()
	}

	return &CompleteCommand{
		Description:        partial.Description,
		Designator:         partial.Designator,
		Arguments:          args,
		ImmediateArguments: presentation.Objects(st.stream.Source()[start:end]),
		Rest:               rest,
		Keywords:           NewParsedKeywords(params.Keywords, st.keywords),
		source:             st.stream.Source(),
		start:              start,
	}, nil
}

// bindRest collects the remaining tokens. restStart is the stream index of
// the first rest item, or -1 when none was read.
func (st *binding) bindRest(rest *Parameter) ([]any, int, error) {
	restStart := -1

	if rest == nil {
		if err := st.drainKeywords(); err != nil {
			return nil, restStart, err
		}
		if next, ok := st.stream.Peek(); ok {
			return nil, restStart, &UnexpectedArgumentError{
				Message:  fmt.Sprintf("Was not expecting any more arguments, but got %s.", st.Renderer.Render(next)),
				Partial:  st.partial,
				Position: st.stream.Position(),
			}
		}
		return nil, restStart, nil
	}

	if _, ok := st.stream.Peek(); !ok && rest.Prompt != nil && st.Promptable {
		return nil, restStart, &PromptRequiredError{
			Message:   fmt.Sprintf("A prompt is required for the missing argument for the %s parameter", rest.Name),
			Parameter: rest,
			Partial:   st.partial,
			Rest:      true,
		}
	}

	items := []any{}
	for {
		if err := st.drainKeywords(); err != nil {
			return nil, restStart, err
		}
		next, ok := st.stream.Peek()
		if !ok {
			return items, restStart, nil
		}
		if restStart < 0 {
			restStart = st.stream.Position()
		}
		accepted, err := st.accept(rest, next)
		if err != nil {
			return nil, restStart, err
		}
		items = append(items, accepted.Object())
		st.stream.Read()
	}
}

// drainKeywords consumes every keyword at the head of the stream.
func (st *binding) drainKeywords() error {
	for {
		next, ok := st.stream.Peek()
		if !ok {
			return nil
		}
		keyword, found := next.Object().(presentation.Keyword)
		if !found {
			return nil
		}

		kp, declared := st.partial.Description.Parameters.Keywords.Lookup(keyword.Designator)
		if !declared {
			if !st.partial.Description.Parameters.Keywords.AllowOtherKeys {
				return &UnexpectedArgumentError{
					Message:  fmt.Sprintf("Encountered unexpected keyword argument: %s", st.Renderer.Render(next)),
					Partial:  st.partial,
					Position: st.stream.Position(),
				}
			}
			st.stream.Read()
			st.keywords[keyword.Designator] = st.readOtherKeyValue()
			continue
		}

		st.stream.Read()
		if kp.IsFlag {
			st.keywords[keyword.Designator] = true
			continue
		}

		param := &Parameter{Name: kp.Name, Description: kp.Description, Acceptor: kp.Acceptor}
		value, ok := st.stream.Peek()
		if ok && isKeyword(value) && !namesType(kp.Acceptor, value) {
			// --reason --dry-run: the next option is not a value for this one.
			ok = false
		}
		if !ok {
			return &ArgumentParseError{
				Message:   fmt.Sprintf("An associated argument was not provided for the keyword %s.", st.Renderer.Render(next)),
				Parameter: param,
				Partial:   st.partial,
				Position:  st.stream.Position(),
			}
		}
		accepted, err := st.accept(param, value)
		if err != nil {
			return err
		}
		st.keywords[keyword.Designator] = accepted.Object()
		st.stream.Read()
	}
}

func isKeyword(p presentation.Presentation) bool {
	_, ok := p.Object().(presentation.Keyword)
	return ok
}

// namesType reports whether schema lists the type of p, as opposed to
// accepting it through Top.
func namesType(schema presentation.Schema, p presentation.Presentation) bool {
	for _, t := range schema.Types() {
		if t.Is(p.Type()) {
			return true
		}
	}
	return false
}

// readOtherKeyValue reads the value of an undeclared keyword: the next
// token if it is not itself a keyword, otherwise true.
func (st *binding) readOtherKeyValue() any {
	next, ok := st.stream.Peek()
	if !ok {
		return true
	}
	if isKeyword(next) {
		return true
	}
	st.stream.Read()
	return next.Object()
}

// accept checks p against the parameter's schema, translating it when a
// translator for one of the accepted types exists.
func (st *binding) accept(param *Parameter, p presentation.Presentation) (presentation.Presentation, error) {
	if param.Acceptor.Check(p) {
		return p, nil
	}
	for _, to := range param.Acceptor.Types() {
		if tr, ok := st.Translators.Find(to, p.Type()); ok {
			return tr.Translate(p), nil
		}
	}
	return presentation.Presentation{}, &ArgumentParseError{
		Message: fmt.Sprintf("Was expecting a match for the presentation type: %s but got %s.",
			param.Acceptor.Describe(), st.Renderer.Render(p)),
		Parameter: param,
		Partial:   st.partial,
		Position:  st.stream.Position(),
	}
}

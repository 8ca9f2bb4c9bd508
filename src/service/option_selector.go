package service

import "gitlab.com/open-soft/go-crypto-dashboard/src/model"

// OptionSelector is a selection control over a fixed ordered option list.
// Its value is always one of the options.
type OptionSelector struct {
	options []string
	index   int
}

func NewOptionSelector(options []string, preferred string) *OptionSelector {
	selector := &OptionSelector{
		options: append([]string(nil), options...),
	}

	for i, option := range selector.options {
		if option == preferred {
			selector.index = i
			break
		}
	}

	return selector
}

// NewSymbolSelector lists the supported symbols in the order supplied and
// preselects the preferred symbol when it is supported.
func NewSymbolSelector(symbols model.SupportedSymbols, preferred string) *OptionSelector {
	return NewOptionSelector(symbols, symbols.Default(preferred))
}

func (s *OptionSelector) Options() []string {
	return s.options
}

func (s *OptionSelector) Value() string {
	if len(s.options) == 0 {
		return ""
	}

	return s.options[s.index]
}

func (s *OptionSelector) Next() {
	if len(s.options) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.options)
}

func (s *OptionSelector) Prev() {
	if len(s.options) == 0 {
		return
	}
	s.index = (s.index - 1 + len(s.options)) % len(s.options)
}

func (s *OptionSelector) Select(value string) bool {
	for i, option := range s.options {
		if option == value {
			s.index = i
			return true
		}
	}

	return false
}

package model

// Decorator enriches a form model after the canonical schema-derived structure
// has been built.
type Decorator interface {
	Decorate(*FormModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FormModel) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *FormModel) error {
	return fn(form)
}

// Localizer resolves symbolic keys into display text. form.Localizer and
// i18n.Localizer satisfy it.
type Localizer interface {
	Localize(key string) string
}

// LocalizeDecorator returns a Decorator applying LocalizeFormModel.
func LocalizeDecorator(loc Localizer) Decorator {
	return DecoratorFunc(func(form *FormModel) error {
		LocalizeFormModel(form, loc)
		return nil
	})
}

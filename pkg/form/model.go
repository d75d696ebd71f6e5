package form

// SubmitPolicy decides what Submit does while the name is blank.
type SubmitPolicy int

const (
	// PolicyIgnore drops the call silently, matching a disabled submit
	// button.
	PolicyIgnore SubmitPolicy = iota
	// PolicyStrict returns an *InvalidStateError.
	PolicyStrict
)

func (p SubmitPolicy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "ignore"
}

// Field identifies which part of the model a Change touched.
type Field string

const (
	FieldName       Field = "name"
	FieldAge        Field = "age"
	FieldGender     Field = "gender"
	FieldSubscribed Field = "subscribed"
	FieldResult     Field = "result"
	FieldRestore    Field = "restore"
)

// Change is delivered to listeners after every mutation.
type Change struct {
	Field     Field
	State     State
	Derived   Derived
	HasResult bool
}

// Listener observes model changes. Listeners run synchronously on the
// mutating goroutine and must not mutate the model.
type Listener func(Change)

// Option configures a Model.
type Option func(*Model)

// WithLocalizer injects the label resolver used by Submit.
func WithLocalizer(loc Localizer) Option {
	return func(m *Model) {
		if loc != nil {
			m.localizer = loc
		}
	}
}

// WithSubmitPolicy selects the invalid-submit policy.
func WithSubmitPolicy(policy SubmitPolicy) Option {
	return func(m *Model) {
		m.policy = policy
	}
}

// WithState seeds the model with s instead of DefaultState. Invalid states are
// ignored.
func WithState(s State) Option {
	return func(m *Model) {
		if s.Validate() == nil {
			m.state = s
		}
	}
}

// WithListener registers a listener at construction time.
func WithListener(fn Listener) Option {
	return func(m *Model) {
		if fn != nil {
			m.addListener(fn)
		}
	}
}

// Model owns one screen's state and its latest submission.
type Model struct {
	state     State
	result    Result
	policy    SubmitPolicy
	localizer Localizer

	listeners map[int]Listener
	order     []int
	nextID    int
}

// New returns a Model in DefaultState with no result.
func New(options ...Option) *Model {
	m := &Model{
		state:     DefaultState(),
		localizer: KeyLocalizer,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

// Policy returns the configured submit policy.
func (m *Model) Policy() SubmitPolicy { return m.policy }

// Localizer returns the configured label resolver.
func (m *Model) Localizer() Localizer { return m.localizer }

// SetLocalizer swaps the resolver used by later submissions. An existing
// result keeps the text it was built with.
func (m *Model) SetLocalizer(loc Localizer) {
	if loc == nil {
		loc = KeyLocalizer
	}
	m.localizer = loc
}

// State returns a copy of the current state.
func (m *Model) State() State { return m.state }

func (m *Model) Name() string { return m.state.Name }
func (m *Model) Age() float64 { return m.state.Age }
func (m *Model) Gender() Gender { return m.state.Gender }
func (m *Model) Subscribed() bool { return m.state.Subscribed }
func (m *Model) Derived() Derived { return m.state.Derive() }
func (m *Model) NameValid() bool { return NameValid(m.state.Name) }
func (m *Model) AgeInteger() int { return AgeInteger(m.state.Age) }
func (m *Model) CanSubmit() bool { return m.NameValid() }
func (m *Model) HasResult() bool { return !m.result.IsZero() }

// Result returns the latest submission, if any.
func (m *Model) Result() (Result, bool) {
	return m.result, !m.result.IsZero()
}

// SetName replaces the name. Any string is accepted; validity is derived.
func (m *Model) SetName(name string) {
	m.state.Name = name
	m.notify(FieldName)
}

// SetAge replaces the age. Values outside [MinAge, MaxAge] are rejected and
// the state is left as it was.
func (m *Model) SetAge(age float64) error {
	if err := checkAge(age); err != nil {
		return err
	}
	m.state.Age = age
	m.notify(FieldAge)
	return nil
}

// SetGender replaces the gender. Only GenderMale and GenderFemale are
// accepted.
func (m *Model) SetGender(g Gender) error {
	if !g.Valid() {
		return contractViolation("gender", string(g), "must be one of male, female")
	}
	m.state.Gender = g
	m.notify(FieldGender)
	return nil
}

// SetSubscribed replaces the subscription flag.
func (m *Model) SetSubscribed(subscribed bool) {
	m.state.Subscribed = subscribed
	m.notify(FieldSubscribed)
}

// Submit builds a Result from the current state and stores it, replacing any
// previous one. With a blank name it does nothing under PolicyIgnore and
// returns an *InvalidStateError under PolicyStrict; the stored result is kept
// in both cases.
func (m *Model) Submit() (Result, error) {
	if !m.NameValid() {
		if m.policy == PolicyStrict {
			return Result{}, &InvalidStateError{Reason: "name is empty"}
		}
		return Result{}, nil
	}
	m.result = BuildResult(m.state, m.localizer)
	m.notify(FieldResult)
	return m.result, nil
}

// ClearResult discards the stored result.
func (m *Model) ClearResult() {
	if m.result.IsZero() {
		return
	}
	m.result = Result{}
	m.notify(FieldResult)
}

// Subscribe registers fn and returns a function that removes it.
func (m *Model) Subscribe(fn Listener) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	id := m.addListener(fn)
	return func() { m.removeListener(id) }
}

func (m *Model) addListener(fn Listener) int {
	if m.listeners == nil {
		m.listeners = make(map[int]Listener)
	}
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.order = append(m.order, id)
	return id
}

func (m *Model) removeListener(id int) {
	if _, ok := m.listeners[id]; !ok {
		return
	}
	delete(m.listeners, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *Model) notify(field Field) {
	if len(m.order) == 0 {
		return
	}
	change := Change{
		Field:     field,
		State:     m.state,
		Derived:   m.state.Derive(),
		HasResult: !m.result.IsZero(),
	}
	ids := append([]int(nil), m.order...)
	for _, id := range ids {
		if fn, ok := m.listeners[id]; ok {
			fn(change)
		}
	}
}

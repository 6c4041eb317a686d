package fieldvalidation

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
)

// Engine evaluates values against rulesets. An Engine holds no per-field
// state and is safe for concurrent use.
type Engine struct {
	logger   *zap.Logger
	registry *Registry
	cfg      Config
}

// Option configures an [Engine].
type Option func(*Engine)

// WithLogger sets the logger used to report recovered rule faults.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRegistry sets the registry used to resolve field types.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithConfig replaces the engine configuration. Zero fields keep their
// defaults.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg.withDefaults()
	}
}

// New returns an engine using the default registry and configuration unless
// overridden by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:   zap.NewNop(),
		registry: DefaultRegistry(),
		cfg:      DefaultConfig(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Registry returns the registry the engine resolves field types with.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Result is the aggregate of one evaluation.
type Result struct {
	Outcomes []Outcome `json:"outcomes"`

	// Valid is true when every required rule is satisfied. A set made only of
	// optional rules is valid when at least one of them is satisfied, and an
	// empty set is always valid.
	Valid bool `json:"valid"`
}

// Err returns the unsatisfied rules as ozzo validation errors keyed by rule
// id, or nil when every rule is satisfied.
func (r Result) Err() error {
	errs := validation.Errors{}
	for _, o := range r.Outcomes {
		if o.Satisfied {
			continue
		}
		msg := o.Rule.Message
		if msg == "" {
			msg = o.Rule.Label
		}
		errs[o.Rule.ID] = validation.NewError("validation_"+o.Rule.ID, msg)
	}
	return errs.Filter()
}

// Evaluate checks value against every rule in rs. Rules are never
// short-circuited: each outcome is computed even after an earlier failure.
func (e *Engine) Evaluate(value string, rs RuleSet) Result {
	outcomes := make([]Outcome, len(rs.rules))
	for i, r := range rs.rules {
		outcomes[i] = Outcome{Rule: r, Satisfied: e.check(r, value)}
	}
	return Result{Outcomes: outcomes, Valid: valid(outcomes)}
}

// EvaluateType checks value against the ruleset registered for t.
func (e *Engine) EvaluateType(value string, t FieldType) Result {
	return e.Evaluate(value, e.registry.RulesFor(t))
}

type errChecker interface {
	CheckErr(value string) (bool, error)
}

// check runs a single rule. A panicking checker, or one reporting a fault,
// counts as unsatisfied and never reaches the caller.
func (e *Engine) check(r Rule, value string) (ok bool) {
	defer func() {
		if p := recover(); p != nil {
			e.logger.Warn("Rule check panicked",
				zap.String("rule", r.ID),
				zap.Any("panic", p),
			)
			ok = false
		}
	}()

	if c, isErr := r.checker.(errChecker); isErr {
		sat, err := c.CheckErr(value)
		if err != nil {
			e.logger.Warn("Rule check failed",
				zap.String("rule", r.ID),
				zap.Error(err),
			)
			return false
		}
		return sat
	}
	return r.checker.Check(value)
}

// valid applies the aggregate rule. Optional rules only gate validity in a
// set without required rules; next to required rules they are advisory.
func valid(outcomes []Outcome) bool {
	hasRequired, requiredOK := false, true
	hasOptional, optionalOK := false, false
	for _, o := range outcomes {
		if o.Rule.Required {
			hasRequired = true
			requiredOK = requiredOK && o.Satisfied
			continue
		}
		hasOptional = true
		optionalOK = optionalOK || o.Satisfied
	}
	if hasRequired {
		return requiredOK
	}
	return !hasOptional || optionalOK
}

// genericMessage formats the configured fallback for t. Anything other than a
// format with a single %s verb is used verbatim.
func (e *Engine) genericMessage(t FieldType) string {
	format := e.cfg.GenericMessage
	if format == "" {
		format = DefaultConfig().GenericMessage
	}
	if strings.Count(format, "%s") != 1 || strings.Count(format, "%") != 1 {
		return format
	}
	return fmt.Sprintf(format, t)
}

// IsRuleFault reports whether err came from a checker that could not reach a
// verdict.
func IsRuleFault(err error) bool {
	return errors.Is(err, ErrRuleFault)
}

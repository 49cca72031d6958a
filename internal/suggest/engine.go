package suggest

// Engine runs an ordered rule table against a Context and collects the
// resulting messages.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with all built-in rules registered in
// their contractual evaluation order.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			DocumentationCoverage,
			ComplexityReduction,
			ModuleOrganization,
			LanguageStyle,
			DependencyHygiene,
			HardcodedSecrets,
			PerformanceReview,
			ClosingPractices,
		},
	}
}

// Run evaluates every rule in order and returns the first
// MaxSuggestions triggered messages. Once the cap is reached, messages
// from later rules are dropped.
func (e *Engine) Run(ctx *Context) []string {
	suggestions := make([]string, 0, MaxSuggestions)
	for _, rule := range e.rules {
		for _, msg := range rule(ctx) {
			if len(suggestions) == MaxSuggestions {
				return suggestions
			}
			suggestions = append(suggestions, msg)
		}
	}
	return suggestions
}

// defaultEngine serves the package-level Run; the rule table is
// immutable so a single shared instance is safe for concurrent use.
var defaultEngine = NewEngine()

// Run evaluates the built-in rule table against ctx.
func Run(ctx *Context) []string {
	return defaultEngine.Run(ctx)
}

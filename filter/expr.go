package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Check cache if enabled
	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached.(CompiledFilter), nil
		}
	}

	// Compile with static environment for validation
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(), // Allow anime properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	// The filter keeps the compiler's helper map so custom functions
	// registered at construction are visible at runtime too.
	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	// Cache if enabled
	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against an anime
func (f *exprFilter) Evaluate(anime AnimeInfo) bool {
	env := createRuntimeEnvironment(anime, f.helpers)

	result, err := expr.Run(f.program, env)
	if err != nil {
		// Skip records that cause runtime errors rather than failing
		// the whole evaluation pass
		return false
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// IsThreadSafe indicates that expr filters are thread-safe
func (f *exprFilter) IsThreadSafe() bool {
	return true
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// Case-insensitive string helpers. expr reserves contains, startsWith
	// and endsWith as infix operators, so the function forms need their
	// own names; the bare operators remain available for case-sensitive
	// matching.
	env["containsText"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWithText"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWithText"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(anime AnimeInfo, helpers map[string]any) map[string]any {
	env := make(map[string]any, len(helpers)+24)

	// Add helper functions, including any custom ones
	maps.Copy(env, helpers)

	// Add anime data
	env["Anime"] = anime

	// Anime-specific helper functions using closures
	env["hasTheme"] = createHasThemeFunc(anime.ThemeSlugs)
	env["hasSynonym"] = createExactMatchFunc(anime.Synonyms)
	env["hasSite"] = createExactMatchFunc(anime.Sites)
	env["hasArtist"] = createExactMatchFunc(anime.Artists)
	env["hasSong"] = createHasSongFunc(anime.SongTitles)
	env["externalID"] = anime.ExternalID

	// Direct anime properties for convenience
	env["Name"] = anime.Name
	env["Slug"] = anime.Slug
	env["Year"] = anime.Year
	env["Season"] = anime.Season
	env["Synopsis"] = anime.Synopsis
	env["Synonyms"] = anime.Synonyms
	env["Series"] = anime.Series
	env["ThemeSlugs"] = anime.ThemeSlugs
	env["SongTitles"] = anime.SongTitles
	env["Artists"] = anime.Artists
	env["Sites"] = anime.Sites
	env["ThemeCount"] = anime.ThemeCount
	env["VideoCount"] = anime.VideoCount
	env["CreatedAt"] = anime.CreatedAt
	env["UpdatedAt"] = anime.UpdatedAt

	return env
}

// Helper factory functions for better performance through closures

// createHasThemeFunc matches theme slugs by prefix, so hasTheme("OP")
// covers OP1, OP2 and dub variants alike.
func createHasThemeFunc(slugs []string) func(string) bool {
	upperSlugs := make([]string, len(slugs))
	for i, slug := range slugs {
		upperSlugs[i] = strings.ToUpper(slug)
	}
	return func(slug string) bool {
		target := strings.ToUpper(strings.TrimSpace(slug))
		if target == "" {
			return false
		}
		for _, s := range upperSlugs {
			if strings.HasPrefix(s, target) {
				return true
			}
		}
		return false
	}
}

// createExactMatchFunc matches a value against a list case-insensitively.
func createExactMatchFunc(values []string) func(string) bool {
	lowerValues := make([]string, len(values))
	for i, v := range values {
		lowerValues[i] = strings.ToLower(v)
	}
	return func(value string) bool {
		return slices.Contains(lowerValues, strings.ToLower(value))
	}
}

// createHasSongFunc matches song titles by case-insensitive substring;
// exact titles are long and rarely typed in full.
func createHasSongFunc(titles []string) func(string) bool {
	lowerTitles := make([]string, len(titles))
	for i, title := range titles {
		lowerTitles[i] = strings.ToLower(title)
	}
	return func(fragment string) bool {
		target := strings.ToLower(fragment)
		if target == "" {
			return false
		}
		for _, title := range lowerTitles {
			if strings.Contains(title, target) {
				return true
			}
		}
		return false
	}
}

package duaqos

import "github.com/gonzalop/duaqos/rmw"

// policy is one row of the catalog: what a class uses for a category.
type policy struct {
	class       Class
	category    Category
	depth       uint
	reliability rmw.Reliability
	durability  rmw.Durability
	legacy      bool
}

// catalog is the single table every getter reads. Order is the order
// Entries reports.
var catalog = [...]policy{
	{ClassReliable, CategoryDatum, 10, rmw.ReliabilityReliable, rmw.DurabilityVolatile, false},
	{ClassReliable, CategoryScan, 5, rmw.ReliabilityReliable, rmw.DurabilityVolatile, false},
	{ClassReliable, CategoryImage, 1, rmw.ReliabilityReliable, rmw.DurabilityVolatile, false},

	{ClassBestEffort, CategoryDatum, 10, rmw.ReliabilityBestEffort, rmw.DurabilityVolatile, false},
	{ClassBestEffort, CategoryScan, 5, rmw.ReliabilityBestEffort, rmw.DurabilityVolatile, false},
	{ClassBestEffort, CategoryImage, 1, rmw.ReliabilityBestEffort, rmw.DurabilityVolatile, false},

	// Always reliable. There is no best-effort persistent profile.
	{ClassPersistent, CategoryDatum, 20, rmw.ReliabilityReliable, rmw.DurabilityTransientLocal, false},

	{ClassLegacy, CategoryDatum, 10, rmw.ReliabilityReliable, rmw.DurabilityVolatile, true},
	{ClassLegacy, CategoryCommand, 10, rmw.ReliabilityReliable, rmw.DurabilityVolatile, true},
	{ClassLegacy, CategoryScan, 5, rmw.ReliabilityReliable, rmw.DurabilityVolatile, true},
	{ClassLegacy, CategoryImage, 1, rmw.ReliabilityReliable, rmw.DurabilityVolatile, true},

	{ClassVisualization, CategoryDatum, 5, rmw.ReliabilityBestEffort, rmw.DurabilityVolatile, true},
	{ClassVisualization, CategoryCommand, 5, rmw.ReliabilityBestEffort, rmw.DurabilityVolatile, true},
	{ClassVisualization, CategoryScan, 1, rmw.ReliabilityBestEffort, rmw.DurabilityVolatile, true},
	{ClassVisualization, CategoryImage, 1, rmw.ReliabilityBestEffort, rmw.DurabilityVolatile, true},
	{ClassVisualization, CategoryMarker, 1, rmw.ReliabilityBestEffort, rmw.DurabilityVolatile, true},
}

func findPolicy(class Class, category Category) (policy, bool) {
	for _, p := range catalog {
		if p.class == class && p.category == category {
			return p, true
		}
	}
	return policy{}, false
}

func (p policy) profile(opts []Option) rmw.Profile {
	o := applyOptions(p.depth, opts)
	q := rmw.NewProfile(rmw.KeepLast(o.depth))
	switch p.reliability {
	case rmw.ReliabilityBestEffort:
		q = q.BestEffort()
	default:
		q = q.Reliable()
	}
	switch p.durability {
	case rmw.DurabilityTransientLocal:
		q = q.TransientLocal()
	default:
		q = q.DurabilityVolatile()
	}
	return q
}

// Lookup returns the profile class defines for category, with opts applied.
// It returns a *ProfileError wrapping ErrUnknownProfile if the class has no
// such profile.
func Lookup(class Class, category Category, opts ...Option) (rmw.Profile, error) {
	p, ok := findPolicy(class, category)
	if !ok {
		return rmw.Profile{}, &ProfileError{Class: class, Category: category}
	}
	return p.profile(opts), nil
}

// MustLookup is like Lookup but panics if the class has no such profile.
// It is meant for fixed combinations known to be in the catalog.
func MustLookup(class Class, category Category, opts ...Option) rmw.Profile {
	q, err := Lookup(class, category, opts...)
	if err != nil {
		panic("duaqos: " + err.Error())
	}
	return q
}

// Entry describes one catalog profile at its default depth.
type Entry struct {
	Class        Class       `json:"class" yaml:"class"`
	Category     Category    `json:"category" yaml:"category"`
	DefaultDepth uint        `json:"default_depth" yaml:"default_depth"`
	Profile      rmw.Profile `json:"profile" yaml:"profile"`
	Legacy       bool        `json:"legacy" yaml:"legacy"`
}

// Entries lists every profile in the catalog. The returned slice is a new
// copy on each call.
func Entries() []Entry {
	entries := make([]Entry, 0, len(catalog))
	for _, p := range catalog {
		entries = append(entries, Entry{
			Class:        p.class,
			Category:     p.category,
			DefaultDepth: p.depth,
			Profile:      p.profile(nil),
			Legacy:       p.legacy,
		})
	}
	return entries
}

// Categories returns the categories class defines, in catalog order.
func Categories(class Class) []Category {
	var out []Category
	for _, p := range catalog {
		if p.class == class {
			out = append(out, p.category)
		}
	}
	return out
}

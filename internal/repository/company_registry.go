package repository

// CompanyRegistry keeps the unique set of company names referenced by roles.
type CompanyRegistry struct {
	companies map[string]struct{}
}

func NewCompanyRegistry() *CompanyRegistry {
	return &CompanyRegistry{companies: make(map[string]struct{})}
}

// Add inserts a company name. Adding an existing name is a no-op.
func (r *CompanyRegistry) Add(name string) {
	r.companies[name] = struct{}{}
}

// Exists reports whether a company name has been registered.
func (r *CompanyRegistry) Exists(name string) bool {
	_, ok := r.companies[name]
	return ok
}

// Reset clears the registry.
func (r *CompanyRegistry) Reset() {
	r.companies = make(map[string]struct{})
}

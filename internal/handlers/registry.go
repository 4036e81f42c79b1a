package handlers

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Profile     *ProfileHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Taxonomy    *TaxonomyHandler
	Admin       *AdminHandler
}

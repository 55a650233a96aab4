package http

import (
	"net/http"
	"time"

	"practice-site/internal/delivery/http/handler"
	"practice-site/internal/delivery/http/middleware"
	"practice-site/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	uploadDir         string
	practiceHandler   *handler.PracticeHandler
	serviceHandler    *handler.ServiceHandler
	teamHandler       *handler.TeamHandler
	blogHandler       *handler.BlogHandler
	contactHandler    *handler.ContactHandler
	galleryHandler    *handler.GalleryHandler
	searchHandler     *handler.SearchHandler
	uploadHandler     *handler.UploadHandler
	authHandler       *handler.AuthHandler
	documentHandler   *handler.DocumentHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

type RouterConfig struct {
	UploadDir         string
	PracticeHandler   *handler.PracticeHandler
	ServiceHandler    *handler.ServiceHandler
	TeamHandler       *handler.TeamHandler
	BlogHandler       *handler.BlogHandler
	ContactHandler    *handler.ContactHandler
	GalleryHandler    *handler.GalleryHandler
	SearchHandler     *handler.SearchHandler
	UploadHandler     *handler.UploadHandler
	AuthHandler       *handler.AuthHandler
	DocumentHandler   *handler.DocumentHandler
	AuthMiddleware    *middleware.AuthMiddleware
	CORSMiddleware    *middleware.CORSMiddleware
	LoggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(cfg RouterConfig) *Router {
	return &Router{
		router:            mux.NewRouter(),
		uploadDir:         cfg.UploadDir,
		practiceHandler:   cfg.PracticeHandler,
		serviceHandler:    cfg.ServiceHandler,
		teamHandler:       cfg.TeamHandler,
		blogHandler:       cfg.BlogHandler,
		contactHandler:    cfg.ContactHandler,
		galleryHandler:    cfg.GalleryHandler,
		searchHandler:     cfg.SearchHandler,
		uploadHandler:     cfg.UploadHandler,
		authHandler:       cfg.AuthHandler,
		documentHandler:   cfg.DocumentHandler,
		authMiddleware:    cfg.AuthMiddleware,
		corsMiddleware:    cfg.CORSMiddleware,
		loggingMiddleware: cfg.LoggingMiddleware,
	}
}

func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public routes
	api.HandleFunc("/practice", r.practiceHandler.GetPractice).Methods(http.MethodGet)
	api.HandleFunc("/practice/status", r.practiceHandler.GetStatus).Methods(http.MethodGet)
	api.HandleFunc("/ui", r.practiceHandler.GetUI).Methods(http.MethodGet)
	api.HandleFunc("/services", r.serviceHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", r.serviceHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/team", r.teamHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/team/{id}", r.teamHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/blog", r.blogHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/blog/slug/{slug}", r.blogHandler.GetBySlug).Methods(http.MethodGet)
	api.HandleFunc("/blog/{id}", r.blogHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/blog/{id}/like", r.blogHandler.Like).Methods(http.MethodPost)
	api.HandleFunc("/contact", r.contactHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/gallery", r.galleryHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/search", r.searchHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/admin/login", r.authHandler.Login).Methods(http.MethodPost)

	// Admin routes (protected)
	admin := api.NewRoute().Subrouter()
	admin.Use(r.authMiddleware.Authenticate)

	admin.HandleFunc("/admin/logout", r.authHandler.Logout).Methods(http.MethodPost)
	admin.HandleFunc("/admin/me", r.authHandler.Me).Methods(http.MethodGet)
	admin.HandleFunc("/admin/data", r.documentHandler.GetDocument).Methods(http.MethodGet)
	admin.HandleFunc("/admin/data", r.documentHandler.SaveDocument).Methods(http.MethodPost)
	admin.HandleFunc("/admin/data/{section}", r.documentHandler.SaveSection).Methods(http.MethodPut)

	admin.HandleFunc("/practice", r.practiceHandler.UpdatePractice).Methods(http.MethodPut)
	admin.HandleFunc("/ui", r.practiceHandler.ReplaceUI).Methods(http.MethodPut)

	admin.HandleFunc("/services", r.serviceHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.serviceHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.serviceHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/team", r.teamHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/team/{id}", r.teamHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/team/{id}", r.teamHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/blog", r.blogHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/blog/{id}", r.blogHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/blog/{id}", r.blogHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/contact", r.contactHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/contact/stats", r.contactHandler.GetStats).Methods(http.MethodGet)
	admin.HandleFunc("/contact/{id}", r.contactHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/contact/{id}", r.contactHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/contact/{id}", r.contactHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/gallery", r.galleryHandler.Replace).Methods(http.MethodPut)
	admin.HandleFunc("/gallery/facility-images", r.galleryHandler.AddFacilityImage).Methods(http.MethodPost)
	admin.HandleFunc("/gallery/facility-images/{index}", r.galleryHandler.RemoveFacilityImage).Methods(http.MethodDelete)
	admin.HandleFunc("/gallery/cases", r.galleryHandler.AddCase).Methods(http.MethodPost)
	admin.HandleFunc("/gallery/cases/{index}", r.galleryHandler.RemoveCase).Methods(http.MethodDelete)

	admin.HandleFunc("/upload/single", r.uploadHandler.UploadSingle).Methods(http.MethodPost)
	admin.HandleFunc("/upload/multiple", r.uploadHandler.UploadMultiple).Methods(http.MethodPost)
	admin.HandleFunc("/upload/{type}/{filename}", r.uploadHandler.Delete).Methods(http.MethodDelete)

	// Uploaded files
	r.router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.uploadDir))),
	).Methods(http.MethodGet, http.MethodHead)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	r.router.Use(r.loggingMiddleware.Recover)
	r.router.Use(r.loggingMiddleware.Handle)

	// CORS wraps the router so preflight requests never reach route matching
	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "OK", map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

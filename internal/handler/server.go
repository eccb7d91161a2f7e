package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swiperent/internal/config"
	"swiperent/internal/listings"
	"swiperent/internal/middleware"
	"swiperent/internal/storage"
	"swiperent/internal/store"
	"swiperent/internal/workflow"
	"swiperent/pkg/jwtutil"
	"swiperent/prometheus"
)

// Server wires stores, the application workflow and external clients into
// HTTP handlers.
type Server struct {
	cfg          *config.Config
	log          *zap.Logger
	tokens       *jwtutil.JWTUtil
	users        *store.UserStore
	profiles     *store.ProfileStore
	documents    *store.DocumentStore
	apartments   *store.ApartmentStore
	favorites    *store.FavoriteStore
	applications *workflow.ApplicationWorkflow
	uploads      *storage.Store
	listings     *listings.Client
}

// Deps collects everything a Server needs.
type Deps struct {
	Config       *config.Config
	Log          *zap.Logger
	Tokens       *jwtutil.JWTUtil
	Users        *store.UserStore
	Profiles     *store.ProfileStore
	Documents    *store.DocumentStore
	Apartments   *store.ApartmentStore
	Favorites    *store.FavoriteStore
	Applications *workflow.ApplicationWorkflow
	Uploads      *storage.Store
	Listings     *listings.Client
}

func New(d Deps) *Server {
	return &Server{
		cfg:          d.Config,
		log:          d.Log,
		tokens:       d.Tokens,
		users:        d.Users,
		profiles:     d.Profiles,
		documents:    d.Documents,
		apartments:   d.Apartments,
		favorites:    d.Favorites,
		applications: d.Applications,
		uploads:      d.Uploads,
		listings:     d.Listings,
	}
}

// RegisterRoutes mounts the API surface on the engine.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/", s.rootHandler)
	r.GET("/api/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(prometheus.Handler()))

	r.POST("/api/signup", s.signupHandler)
	r.POST("/api/signin", s.signinHandler)
	r.GET("/api/listings", s.listingsHandler)

	authGroup := r.Group("/api")
	authGroup.Use(middleware.Auth(s.tokens))
	authGroup.GET("/protected-route", s.protectedHandler)
	authGroup.POST("/favorites", s.addFavoriteHandler)
	authGroup.GET("/favorites", s.listFavoritesHandler)
	authGroup.DELETE("/favorites/:id", s.removeFavoriteHandler)
	authGroup.GET("/profile", s.getProfileHandler)
	authGroup.POST("/profile", s.upsertProfileHandler)
	authGroup.POST("/documents/upload", s.uploadDocumentHandler)
	authGroup.GET("/documents", s.listDocumentsHandler)
	authGroup.DELETE("/documents/:id", s.deleteDocumentHandler)
	authGroup.POST("/applications", s.submitApplicationHandler)
	authGroup.GET("/applications/check/:apartmentId", s.checkApplicationHandler)
}

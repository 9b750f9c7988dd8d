package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/GoSim-25-26J-441/projects-service/internal/api/http"
	apimw "github.com/GoSim-25-26J-441/projects-service/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/projects-service/internal/auth"
	authmw "github.com/GoSim-25-26J-441/projects-service/internal/auth/middleware"
	projectshttp "github.com/GoSim-25-26J-441/projects-service/internal/projects/http"
	"github.com/GoSim-25-26J-441/projects-service/internal/projects/repository"
	"github.com/GoSim-25-26J-441/projects-service/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Logger      *zap.Logger
	Store       repository.ProjectStore
	Ping        httpapi.Pinger
	Verifier    *auth.TokenVerifier
	Blocklist   auth.Blocklist

	CORSOrigins    []string
	LenientJSON    bool
	RateLimitRPS   float64
	RateLimitBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(apimw.RecoveryMiddleware(dep.Logger))
	r.Use(apimw.RequestIDMiddleware(dep.Logger))
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))
	r.Use(apimw.RateLimitMiddleware(dep.RateLimitRPS, dep.RateLimitBurst))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Ping)
	healthHandler.RegisterRoutes(r)

	projectsGroup := r.Group("/projects")
	projectsGroup.Use(authmw.JWTAuthMiddleware(dep.Verifier, dep.Blocklist, dep.Logger))

	projectsHandler := projectshttp.New(service.NewProjectService(dep.Store), dep.Logger, dep.LenientJSON)
	projectsHandler.Register(projectsGroup)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", apimw.HeaderRequestID)
	cfg.ExposeHeaders = []string{apimw.HeaderRequestID}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

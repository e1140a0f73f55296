package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/covid-trends/consts"
	"github.com/bitmark-inc/covid-trends/logmodule"
	"github.com/bitmark-inc/covid-trends/schema"
	"github.com/bitmark-inc/covid-trends/session"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

const defaultFetchTimeout = 30 * time.Second

// ChartSession is the session state the api exposes.
type ChartSession interface {
	Render() schema.ChartData
	Desired() schema.Selection
	Select(ctx context.Context, sel schema.Selection) error
	Refresh(ctx context.Context) error
	SetDay(day int)
	SetUserRange(r schema.AxisRanges) error
	ClearUserRange()
	Countries() []session.Country
	Status() session.Status
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// the single chart session served by this instance
	session ChartSession

	// timeout of fetches run in the background
	fetchTimeout time.Duration
}

// NewServer new instance of server
func NewServer(s ChartSession, fetchTimeout time.Duration) *Server {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}

	return &Server{
		session:      s,
		fetchTimeout: fetchTimeout,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(recoverWithEncoding())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "PUT", "PATCH", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	apiRoute.GET("/information", s.information)

	chartRoute := apiRoute.Group("/chart")
	{
		chartRoute.GET("", s.chart)
		chartRoute.PATCH("/day", s.setDay)
		chartRoute.PUT("/range", s.setRange)
		chartRoute.DELETE("/range", s.clearRange)
	}

	selectionRoute := apiRoute.Group("/selection")
	{
		selectionRoute.GET("", s.getSelection)
		selectionRoute.PUT("", s.updateSelection)
	}

	datasetRoute := apiRoute.Group("/dataset")
	{
		datasetRoute.GET("/status", s.status)
		datasetRoute.GET("/countries", s.countries)
		datasetRoute.POST("/refresh", s.refresh)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// background runs a fetch detached from the request. A superseded fetch is
// expected and only logged at debug level.
func (s *Server) background(f func(context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
		defer cancel()

		err := f(ctx)
		switch {
		case err == nil:
		case err == session.ErrStaleFetch:
			log.Debug(err)
		default:
			log.WithField("error", err).Warn("background fetch")
		}
	}()
}

// wait reports whether the client asked to block until the fetch is done.
func wait(c *gin.Context) bool {
	switch c.Query("wait") {
	case "1", "true":
		return true
	}
	return false
}

func (s *Server) healthz(c *gin.Context) {
	status := s.session.Status()

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
		"dataset": status.DatasetID,
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"data_types":            schema.DataTypes,
			"windows":               consts.WindowSizes,
			"min_cases":             viper.GetFloat64("trend.min_cases"),
			"countries_of_interest": consts.CountriesOfInterest,
		},
	})
}

// recoverWithEncoding turns a panic in a handler into the standard internal
// error response. It sits outside sentrygin, which reports and re-panics.
func recoverWithEncoding() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(logrus.Fields{"path": c.Request.URL.Path, "panic": r}).Error("recovered from panic")
				abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
			}
		}()
		c.Next()
	}
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}

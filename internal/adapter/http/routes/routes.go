package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "mecanique_mobile/docs" // This will be auto-generated
	"mecanique_mobile/internal/adapter/http/handlers"
	repository2 "mecanique_mobile/internal/adapter/persistence/repository"
	"mecanique_mobile/internal/availability"
	"mecanique_mobile/internal/distance"
	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/internal/infrastructure/calendar"
	"mecanique_mobile/internal/infrastructure/database"
	"mecanique_mobile/internal/infrastructure/geo"
	"mecanique_mobile/internal/infrastructure/mail"
	"mecanique_mobile/internal/usecase"
	"mecanique_mobile/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", defaultPort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	loc := businessLocation()
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	catalogRepo := repository2.NewServiceCatalogDynamoRepository(ddb)

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	if _, err := catalogUseCase.Reload(context.Background()); err != nil {
		// Startup proceeds on an empty snapshot; staff can reload later.
		log.Printf("[routes] initial catalog load failed: %v", err)
	}

	resolver := buildResolver()
	calendarGateway := buildCalendarGateway(loc)
	mailer := buildMailer()

	engine := availability.NewEngine(calendarGateway, loc)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, catalogUseCase, resolver, calendarGateway, mailer, loc)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo)
	draftUseCase := usecase.NewDraftUseCase(resolver.ResolveKm, engine.SlotsForDate, distance.DefaultDebounce)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, loc)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase, loc)
	serviceHandler := handlers.NewServiceHandler(catalogUseCase)
	availabilityHandler := handlers.NewAvailabilityHandler(engine, loc)
	distanceHandler := handlers.NewDistanceHandler(resolver)
	draftHandler := handlers.NewDraftHandler(draftUseCase, loc)

	// Rotas publiques
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, quoteHandler, serviceHandler, availabilityHandler, distanceHandler, draftHandler)
	addInvoiceRoutes(v1, invoiceHandler)
}

// buildResolver wires the three distance tiers. The routing tier is only
// present when a Google Maps key is configured; the geocoding and static
// tiers are always there.
func buildResolver() *distance.Resolver {
	origin := entities.Coordinate{
		Latitude:  getenvFloat("ORIGIN_LAT", 45.6426),
		Longitude: getenvFloat("ORIGIN_LNG", -73.6274),
	}
	roadFactor := getenvFloat("ROAD_FACTOR", distance.DefaultRoadFactor)

	var routing distance.RoutingClient
	if key := os.Getenv("GOOGLE_MAPS_API_KEY"); key != "" {
		routing = geo.NewDistanceMatrixClient(key, os.Getenv("ORIGIN_ADDRESS"))
	} else {
		log.Printf("[routes] GOOGLE_MAPS_API_KEY not set, routing tier disabled")
	}

	geocoder := geo.NewNominatimClient(os.Getenv("NOMINATIM_BASE_URL"))

	return distance.NewResolver(routing, geocoder, distance.NewStaticTable(), origin, roadFactor)
}

func buildCalendarGateway(loc *time.Location) interfaces.ICalendarGateway {
	creds := os.Getenv("GOOGLE_CALENDAR_CREDENTIALS_JSON")
	if creds == "" {
		log.Printf("[routes] Google Calendar not configured, bookings disabled and availability fails open")
		return nil
	}

	gw, err := calendar.NewGoogleCalendarGateway(
		context.Background(),
		[]byte(creds),
		getenvDefault("GOOGLE_CALENDAR_ID", "primary"),
		loc,
	)
	if err != nil {
		log.Printf("[routes] Google Calendar gateway not configured: %v", err)
		return nil
	}
	return gw
}

func buildMailer() interfaces.IQuoteMailer {
	fromEmail := os.Getenv("SES_FROM_EMAIL")
	if fromEmail == "" {
		log.Printf("[routes] SES_FROM_EMAIL not set, confirmation emails disabled")
		return nil
	}

	cfg, err := database.NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		log.Printf("[routes] SES mailer not configured: %v", err)
		return nil
	}
	return mail.NewSESMailer(sesv2.NewFromConfig(cfg), fromEmail, os.Getenv("SES_FROM_NAME"))
}

func businessLocation() *time.Location {
	name := getenvDefault("BUSINESS_TIMEZONE", "America/Montreal")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[routes] unknown timezone %q, falling back to UTC", name)
		return time.UTC
	}
	return loc
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[routes] invalid %s=%q, using default %v", key, v, def)
		return def
	}
	return f
}

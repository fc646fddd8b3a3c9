package routes

import (
	"mecanique_mobile/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes       = "/quotes"
	PathServices     = "/services"
	PathAvailability = "/availability"
	PathDistance     = "/distance"
	PathDrafts       = "/drafts"
	PathInvoices     = "/invoices"
)

func addQuotingRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	serviceHandler *handlers.ServiceHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	distanceHandler *handlers.DistanceHandler,
	draftHandler *handlers.DraftHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.SubmitQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/confirm", quoteHandler.ConfirmQuote)
		quotes.PATCH("/:id/cancel", quoteHandler.CancelQuote)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", serviceHandler.ListServices)
		services.POST("/reload", serviceHandler.ReloadServices)
	}

	rg.GET(PathAvailability, availabilityHandler.GetAvailability)
	rg.GET(PathDistance, distanceHandler.GetDistance)

	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", draftHandler.CreateDraft)
		drafts.GET("/:id", draftHandler.GetDraft)
		drafts.PATCH("/:id/address", draftHandler.SetDraftAddress)
		drafts.PATCH("/:id/date", draftHandler.SetDraftDate)
		drafts.DELETE("/:id", draftHandler.DeleteDraft)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id/status", invoiceHandler.UpdateInvoiceStatus)
	}
}

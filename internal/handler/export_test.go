package handler

// Export for testing
type SubscribeResponse = subscribeResponse
type ContactResponse = contactResponse
type LeadResponse = leadResponse
type GeocodeResponse = geocodeResponse
type PlacesResponse = placesResponse

var NewNewsletterHandlerHelper = NewNewsletterHandler
var NewContactHandlerHelper = NewContactHandler
var NewLeadHandlerHelper = NewLeadHandler
var NewGeoHandlerHelper = NewGeoHandler

var WriteServiceError = writeServiceError
var RespondError = respondError

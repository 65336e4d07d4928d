package http

import (
	"errors"
	"net/http"
	"strings"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/domain/model/profile"
	"loadboard/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases, and owns
// the translation of use-case errors into status codes. A lost write race is
// a normal marketplace outcome, not a fault: it maps to 409 and is never
// treated as a server error.
type Server struct {
	// Command handlers
	signUpHandler       commands.SignUpCommandHandler
	postLoadHandler     commands.PostLoadCommandHandler
	acceptLoadHandler   commands.AcceptLoadCommandHandler
	assignDriverHandler commands.AssignDriverCommandHandler
	startTripHandler    commands.StartTripCommandHandler
	completeLoadHandler commands.CompleteLoadCommandHandler
	deleteLoadHandler   commands.DeleteLoadCommandHandler

	// Query handlers
	signInHandler       queries.SignInQueryHandler
	getOpenLoadsHandler queries.GetOpenLoadsQueryHandler
	getLoadsByShipper   queries.GetLoadsByShipperQueryHandler
	getLoadsByDriver    queries.GetLoadsByDriverQueryHandler
	getMatchingDrivers  queries.GetMatchingDriversQueryHandler
	getRouteHandler     queries.GetRouteQueryHandler
	getMarketplaceStats queries.GetMarketplaceStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	signUpHandler commands.SignUpCommandHandler,
	postLoadHandler commands.PostLoadCommandHandler,
	acceptLoadHandler commands.AcceptLoadCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	startTripHandler commands.StartTripCommandHandler,
	completeLoadHandler commands.CompleteLoadCommandHandler,
	deleteLoadHandler commands.DeleteLoadCommandHandler,
	signInHandler queries.SignInQueryHandler,
	getOpenLoadsHandler queries.GetOpenLoadsQueryHandler,
	getLoadsByShipper queries.GetLoadsByShipperQueryHandler,
	getLoadsByDriver queries.GetLoadsByDriverQueryHandler,
	getMatchingDrivers queries.GetMatchingDriversQueryHandler,
	getRouteHandler queries.GetRouteQueryHandler,
	getMarketplaceStats queries.GetMarketplaceStatsQueryHandler,
) *Server {
	return &Server{
		signUpHandler:       signUpHandler,
		postLoadHandler:     postLoadHandler,
		acceptLoadHandler:   acceptLoadHandler,
		assignDriverHandler: assignDriverHandler,
		startTripHandler:    startTripHandler,
		completeLoadHandler: completeLoadHandler,
		deleteLoadHandler:   deleteLoadHandler,
		signInHandler:       signInHandler,
		getOpenLoadsHandler: getOpenLoadsHandler,
		getLoadsByShipper:   getLoadsByShipper,
		getLoadsByDriver:    getLoadsByDriver,
		getMatchingDrivers:  getMatchingDrivers,
		getRouteHandler:     getRouteHandler,
		getMarketplaceStats: getMarketplaceStats,
	}
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "healthy")
}

// SignUp handles POST /auth/signup - registers a new profile.
func (s *Server) SignUp(ctx echo.Context) error {
	var request servers.SignUpRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	profileID := kernel.NewUUID()
	cmd, err := commands.NewSignUpCommand(
		profileID,
		request.Name,
		deref(request.Phone),
		string(request.Email),
		request.Password,
		string(request.Role),
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid sign-up data: "+err.Error())
	}

	if handleErr := s.signUpHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrEmailAlreadyRegistered) {
			return errorJSON(ctx, http.StatusConflict, "Email is already registered")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to sign up")
	}

	return ctx.JSON(http.StatusCreated, servers.Profile{
		Id:    profileID.Bytes(),
		Name:  request.Name,
		Phone: request.Phone,
		Email: openapi_types.Email(strings.ToLower(strings.TrimSpace(string(request.Email)))),
		Role:  servers.ProfileRole(request.Role),
	})
}

// SignIn handles POST /auth/signin - exchanges credentials for a session token.
func (s *Server) SignIn(ctx echo.Context) error {
	var request servers.SignInRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	query, err := queries.NewSignInQuery(string(request.Email), request.Password)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid sign-in data: "+err.Error())
	}

	response, err := s.signInHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCredentials) {
			return errorJSON(ctx, http.StatusUnauthorized, "Email or password is incorrect")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to sign in")
	}

	return ctx.JSON(http.StatusOK, servers.SignInResponse{
		Token:     response.Token,
		ExpiresAt: response.ExpiresAt,
		Profile: servers.Profile{
			Id:    response.ProfileID.Bytes(),
			Name:  response.Name,
			Phone: optString(response.Phone),
			Email: openapi_types.Email(response.Email),
			Role:  servers.ProfileRole(response.Role.String()),
		},
	})
}

// SignOut handles POST /auth/signout. Sessions are stateless tokens, so there
// is nothing to revoke server-side; the client simply drops the token.
func (s *Server) SignOut(ctx echo.Context) error {
	if _, ok := sessionFromContext(ctx); !ok {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing bearer token")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PostLoad handles POST /loads - a shipper posts a new load.
func (s *Server) PostLoad(ctx echo.Context) error {
	session, ok := requireRole(ctx, profile.RoleShipper)
	if !ok {
		return nil
	}

	var request servers.NewLoad
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	pickupPoint, err := toDomainGeoPoint(request.PickupPoint)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid load data: "+err.Error())
	}
	dropPoint, err := toDomainGeoPoint(request.DropPoint)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid load data: "+err.Error())
	}

	loadID := kernel.NewUUID()
	cmd, err := commands.NewPostLoadCommand(
		loadID,
		session.UserID,
		request.PickupCity,
		pickupPoint,
		request.DropCity,
		dropPoint,
		request.WeightTonnes,
		request.VolumeCuFt,
		request.VehicleType,
		request.Price,
		deref(request.Description),
		request.PickupDate.Time,
		request.PickupTime,
		deref(request.ContactPhone),
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid load data: "+err.Error())
	}

	if handleErr := s.postLoadHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to post load")
	}

	return ctx.JSON(http.StatusCreated, servers.LoadCreated{Id: loadID.Bytes()})
}

// GetOpenLoads handles GET /loads/open - the driver-facing load board.
func (s *Server) GetOpenLoads(ctx echo.Context, params servers.GetOpenLoadsParams) error {
	if _, ok := requireRole(ctx, profile.RoleDriver); !ok {
		return nil
	}

	query, err := queries.NewGetOpenLoadsQuery(deref(params.PickupCity), deref(params.DropCity), params.MinPrice)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid filters: "+err.Error())
	}

	views, err := s.getOpenLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve open loads")
	}

	return ctx.JSON(http.StatusOK, toAPILoads(views))
}

// GetShipperLoads handles GET /shippers/me/loads - a shipper's own postings.
func (s *Server) GetShipperLoads(ctx echo.Context, params servers.GetShipperLoadsParams) error {
	session, ok := requireRole(ctx, profile.RoleShipper)
	if !ok {
		return nil
	}

	var status *load.Status
	if params.Status != nil {
		parsed, err := load.ParseStatus(string(*params.Status))
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid status filter: "+err.Error())
		}
		status = &parsed
	}

	query, err := queries.NewGetLoadsByShipperQuery(session.UserID, status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid filters: "+err.Error())
	}

	views, err := s.getLoadsByShipper.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve loads")
	}

	return ctx.JSON(http.StatusOK, toAPILoads(views))
}

// GetDriverLoads handles GET /drivers/me/loads - the driver's committed loads.
func (s *Server) GetDriverLoads(ctx echo.Context) error {
	session, ok := requireRole(ctx, profile.RoleDriver)
	if !ok {
		return nil
	}

	query, err := queries.NewGetLoadsByDriverQuery(session.UserID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	views, err := s.getLoadsByDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve loads")
	}

	return ctx.JSON(http.StatusOK, toAPILoads(views))
}

// AcceptLoad handles POST /loads/{loadId}/accept - a driver takes an open load.
func (s *Server) AcceptLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	session, ok := requireRole(ctx, profile.RoleDriver)
	if !ok {
		return nil
	}

	loadID, err := kernel.UUIDFromBytes(loadId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid load id")
	}

	cmd, err := commands.NewAcceptLoadCommand(loadID, session.UserID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	if handleErr := s.acceptLoadHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return loadLifecycleError(ctx, handleErr, "Failed to accept load")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /loads/{loadId}/assign - the shipper hands the
// load to a chosen driver.
func (s *Server) AssignDriver(ctx echo.Context, loadId openapi_types.UUID) error {
	session, ok := requireRole(ctx, profile.RoleShipper)
	if !ok {
		return nil
	}

	var request servers.AssignDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	loadID, err := kernel.UUIDFromBytes(loadId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid load id")
	}
	driverID, err := kernel.UUIDFromBytes(request.DriverId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(loadID, session.UserID, driverID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	if handleErr := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, commands.ErrNotADriver):
			return errorJSON(ctx, http.StatusBadRequest, "Chosen profile is not a driver")
		case errors.Is(handleErr, commands.ErrDriverNotFound):
			return errorJSON(ctx, http.StatusNotFound, "Driver not found")
		default:
			return loadLifecycleError(ctx, handleErr, "Failed to assign driver")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartTrip handles POST /loads/{loadId}/start - the assigned driver departs.
func (s *Server) StartTrip(ctx echo.Context, loadId openapi_types.UUID) error {
	session, ok := requireRole(ctx, profile.RoleDriver)
	if !ok {
		return nil
	}

	loadID, err := kernel.UUIDFromBytes(loadId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid load id")
	}

	cmd, err := commands.NewStartTripCommand(loadID, session.UserID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	if handleErr := s.startTripHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return loadLifecycleError(ctx, handleErr, "Failed to start trip")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteLoad handles POST /loads/{loadId}/complete - the assigned driver
// delivers. Completing an already completed load is a success.
func (s *Server) CompleteLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	session, ok := requireRole(ctx, profile.RoleDriver)
	if !ok {
		return nil
	}

	loadID, err := kernel.UUIDFromBytes(loadId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid load id")
	}

	cmd, err := commands.NewCompleteLoadCommand(loadID, session.UserID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	if handleErr := s.completeLoadHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return loadLifecycleError(ctx, handleErr, "Failed to complete load")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteLoad handles DELETE /loads/{loadId} - the shipper withdraws an open load.
func (s *Server) DeleteLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	session, ok := requireRole(ctx, profile.RoleShipper)
	if !ok {
		return nil
	}

	loadID, err := kernel.UUIDFromBytes(loadId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid load id")
	}

	cmd, err := commands.NewDeleteLoadCommand(loadID, session.UserID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	if handleErr := s.deleteLoadHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrLoadNotDeletable) {
			return errorJSON(ctx, http.StatusConflict, "Load can no longer be deleted")
		}
		return loadLifecycleError(ctx, handleErr, "Failed to delete load")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLoadMatches handles GET /loads/{loadId}/matches - driver suggestions for
// an open load.
func (s *Server) GetLoadMatches(ctx echo.Context, loadId openapi_types.UUID) error {
	session, ok := requireRole(ctx, profile.RoleShipper)
	if !ok {
		return nil
	}

	loadID, err := kernel.UUIDFromBytes(loadId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid load id")
	}

	query, err := queries.NewGetMatchingDriversQuery(loadID, session.UserID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	matches, err := s.getMatchingDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrLoadNotFound):
			return errorJSON(ctx, http.StatusNotFound, "Load not found")
		case errors.Is(err, queries.ErrNotLoadOwner):
			return errorJSON(ctx, http.StatusForbidden, "Load is owned by another shipper")
		case errors.Is(err, queries.ErrLoadNotOpen):
			return errorJSON(ctx, http.StatusConflict, "Load is no longer open")
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "Failed to match drivers")
		}
	}

	response := make([]servers.MatchedDriver, len(matches))
	for i, match := range matches {
		response[i] = servers.MatchedDriver{
			Id:    match.ID.Bytes(),
			Name:  match.Name,
			Phone: optString(match.Phone),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLoadRoute handles GET /loads/{loadId}/route - route preview for a load.
func (s *Server) GetLoadRoute(ctx echo.Context, loadId openapi_types.UUID) error {
	if _, ok := sessionFromContext(ctx); !ok {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	loadID, err := kernel.UUIDFromBytes(loadId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid load id")
	}

	query, err := queries.NewGetRouteQuery(loadID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	route, err := s.getRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, queries.ErrLoadNotFound) {
			return errorJSON(ctx, http.StatusNotFound, "Load not found")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to preview route")
	}

	response := servers.Route{
		PickupCity:  route.PickupCity,
		DropCity:    route.DropCity,
		Available:   route.Available,
		Message:     optString(route.Message),
		PickupPoint: toAPIGeoPoint(route.Pickup),
		DropPoint:   toAPIGeoPoint(route.Drop),
	}
	if route.Available {
		response.DistanceMeters = &route.DistanceMeters
		response.DurationSeconds = &route.DurationSeconds
		polyline := make([][]float64, len(route.Geometry))
		for i, point := range route.Geometry {
			polyline[i] = []float64{point[0], point[1]}
		}
		response.Polyline = &polyline
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAdminStats handles GET /admin/stats - the marketplace overview.
func (s *Server) GetAdminStats(ctx echo.Context) error {
	if _, ok := requireRole(ctx, profile.RoleAdmin); !ok {
		return nil
	}

	stats, err := s.getMarketplaceStats.Handle(ctx.Request().Context(), queries.NewGetMarketplaceStatsQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve stats")
	}

	return ctx.JSON(http.StatusOK, servers.Stats{
		OpenLoads:       stats.OpenLoads,
		AssignedLoads:   stats.AssignedLoads,
		InProgressLoads: stats.InProgressLoads,
		CompletedLoads:  stats.CompletedLoads,
		TotalShippers:   stats.TotalShippers,
		TotalDrivers:    stats.TotalDrivers,
		CompletedValue:  stats.CompletedValue,
	})
}

// errorJSON writes the uniform error body.
func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

// requireRole loads the session and checks the caller's role. On failure it
// writes the error response itself and reports ok=false.
func requireRole(ctx echo.Context, role profile.Role) (Session, bool) {
	session, ok := sessionFromContext(ctx)
	if !ok {
		_ = errorJSON(ctx, http.StatusUnauthorized, "Missing bearer token")
		return Session{}, false
	}
	if session.Role != role {
		_ = errorJSON(ctx, http.StatusForbidden, "Requires the "+role.String()+" role")
		return Session{}, false
	}
	return session, true
}

// loadLifecycleError maps the errors shared by the load lifecycle commands.
func loadLifecycleError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, commands.ErrLoadNotFound):
		return errorJSON(ctx, http.StatusNotFound, "Load not found")
	case errors.Is(err, commands.ErrLoadNoLongerAvailable):
		return errorJSON(ctx, http.StatusConflict, "Load is no longer available")
	case errors.Is(err, commands.ErrNotLoadOwner):
		return errorJSON(ctx, http.StatusForbidden, "Load is owned by another shipper")
	case errors.Is(err, commands.ErrNotAssignedDriver):
		return errorJSON(ctx, http.StatusForbidden, "Driver is not assigned to this load")
	default:
		return errorJSON(ctx, http.StatusInternalServerError, fallback)
	}
}

func toAPILoads(views []queries.LoadView) []servers.Load {
	response := make([]servers.Load, len(views))
	for i, view := range views {
		response[i] = toAPILoad(view)
	}
	return response
}

func toAPILoad(view queries.LoadView) servers.Load {
	result := servers.Load{
		Id:           view.ID.Bytes(),
		ShipperId:    view.ShipperID.Bytes(),
		PickupCity:   view.PickupCity,
		PickupPoint:  toAPIGeoPoint(view.PickupPoint),
		DropCity:     view.DropCity,
		DropPoint:    toAPIGeoPoint(view.DropPoint),
		WeightTonnes: view.WeightTonnes,
		VolumeCuFt:   view.VolumeCuFt,
		VehicleType:  view.VehicleType,
		Price:        view.Price,
		Description:  optString(view.Description),
		PickupDate:   openapi_types.Date{Time: view.PickupDate},
		PickupTime:   view.PickupTime,
		ContactPhone: optString(view.ContactPhone),
		Status:       servers.LoadStatus(view.Status.String()),
		CreatedAt:    view.CreatedAt,
	}
	if view.DriverID != nil {
		driverID := view.DriverID.Bytes()
		result.DriverId = &driverID
	}
	return result
}

func toAPIGeoPoint(point *kernel.GeoPoint) *servers.GeoPoint {
	if point == nil {
		return nil
	}
	return &servers.GeoPoint{Lat: point.Latitude(), Lng: point.Longitude()}
}

func toDomainGeoPoint(point *servers.GeoPoint) (*kernel.GeoPoint, error) {
	if point == nil {
		return nil, nil
	}
	domainPoint, err := kernel.NewGeoPoint(point.Lat, point.Lng)
	if err != nil {
		return nil, err
	}
	return &domainPoint, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package server

func (s *Server) initRoutes() {
	// AUTH - the authorization window navigates these directly
	s.RegisterRouteFunc("GET "+RouteAuthAuthorize, ChainMiddleware(s.AuthorizeHandler(), s.PageMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteAuthCallback, ChainMiddleware(s.AuthCallbackHandler(), s.PageMiddleware()...))

	// Content API routes
	s.RegisterRouteFunc("GET "+RouteAPIVideos, ChainMiddleware(s.VideosHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteAPITranscripts, ChainMiddleware(s.TranscriptsHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc(RouteAPISummarize, ChainMiddleware(s.SummarizeHandler(), s.APIMiddleware()...))

	// Records API routes
	s.RegisterRouteFunc("POST "+RouteAPIRecords, ChainMiddleware(s.RecordCreateHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteAPIRecords, ChainMiddleware(s.RecordListHandler(), s.APIMiddleware()...))
}

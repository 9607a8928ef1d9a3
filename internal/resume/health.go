package resume

// HealthMessage is returned by the health endpoint.
const HealthMessage = "Resume Generator API is running"

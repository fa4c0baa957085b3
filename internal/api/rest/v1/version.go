package v1

// BasePath is the URL prefix of version 1 of the asymmetric crypto
// playground API.
const BasePath = "/api/v1/acp"

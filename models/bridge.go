package models

// DiscoverRequest is sent to the bridge to open a connection and list the
// address books of the account.
type DiscoverRequest struct {
	ServerURL string `json:"serverUrl"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// DiscoverResponse lists the address books found on the remote server.
type DiscoverResponse struct {
	AddressBooks []AddressBook `json:"addressBooks"`
}

// FetchResponse is the full remote enumeration of a connection. The bridge
// sets ServerError when the remote server could not be reached.
type FetchResponse struct {
	Contacts    []RemoteContact `json:"contacts"`
	ServerError bool            `json:"serverError,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// PushRequest is the body of a create or update on the bridge. ETag is
// always sent empty so that the bridge fetches the current version itself.
type PushRequest struct {
	UID         string `json:"uid"`
	VCardText   string `json:"vcard"`
	ETag        string `json:"etag"`
	AddressBook string `json:"addressBook"`
}

// PushResponse carries the identity of the record after a push.
type PushResponse struct {
	ETag        string `json:"etag"`
	Href        string `json:"href"`
	AddressBook string `json:"addressBook,omitempty"`
}

// DeleteRequest addresses a remote record for deletion.
type DeleteRequest struct {
	UID         string `json:"uid"`
	Href        string `json:"href"`
	AddressBook string `json:"addressBook"`
}

// HealthResponse is the bridge's view of a connection.
type HealthResponse struct {
	Status          string `json:"status"`
	ServerReachable bool   `json:"serverReachable"`
}

// BridgeError is the error body returned by the bridge on failures.
type BridgeError struct {
	Error       string `json:"error"`
	ServerError bool   `json:"serverError,omitempty"`
}

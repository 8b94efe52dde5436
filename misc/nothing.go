package misc

// Nothing is the request or reply of rpc methods that do not need one
type Nothing struct{}

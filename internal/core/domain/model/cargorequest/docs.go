// Package cargorequest provides the partial view of the cargo request
// aggregate needed by the delivery lifecycle. A cargo request is the
// shipment posting created by a cargo owner; one delivery fulfills one
// request.
//
// The delivery lifecycle interacts with this aggregate in exactly two ways:
// when a delivery reaches Completed the linked request is completed, and
// when a delivery is cancelled the linked request is cancelled. Request
// creation, pricing, and driver matching are outside this package.
package cargorequest

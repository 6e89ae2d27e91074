// Package formhttp serves compiled schema forms over HTTP using a
// github.com/go-chi/chi/v5 router.
//
// A POST to /forms/{form}/validate accepts urlencoded, multipart or JSON
// (an object of string values) bodies. Every declared field is validated
// (missing fields validate as ""), and the response lists each field's
// status:
//
//	{"form":"signup","valid":false,"fields":{"username":{"valid":false,"message":"Value is too short"}}}
//
// Status codes: 200 valid, 422 invalid, 404 unknown form, 400 undecodable
// body, 415 unsupported or missing content type.
package formhttp

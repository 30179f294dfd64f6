// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/badgesmith/badgesmith/badges"
	"github.com/badgesmith/badgesmith/remote"
)

// request URL path keys
const (
	classVarKey = "class"
)

const classVarMissingMsg = "{class} URL path parameter missing"

// ErrorHeaderKey carries the error text on failed responses.
const ErrorHeaderKey = "X-Badgesmith-Error"

// ErrCasting indicates there was a middleware wiring mistake with the go-kit
// style encoders.
var ErrCasting = errors.New("casting error due to middleware wiring mistake")

var validate = validator.New()

type BadRequestErr struct {
	Message string
}

func (bre BadRequestErr) Error() string {
	return bre.Message
}

func (bre BadRequestErr) StatusCode() int {
	return http.StatusBadRequest
}

type createIssuerRequest struct {
	input badges.IssuerInput
}

type createClassRequest struct {
	input badges.ClassInput
}

type createBadgeRequest struct {
	class string
	email string
}

// Images travel base64-encoded inside the JSON payloads, which is what
// encoding/json does with byte slices on its own.
type createIssuerPayload struct {
	Name        string `json:"name" validate:"required"`
	URL         string `json:"url" validate:"required"`
	Description string `json:"description"`
	Email       string `json:"email" validate:"required,email"`
	Image       []byte `json:"image" validate:"required"`
}

type createClassPayload struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Criteria    string `json:"criteria" validate:"required,url"`
	Image       []byte `json:"image" validate:"required"`
}

type createBadgePayload struct {
	Email string `json:"email" validate:"required,email"`
}

func decodeCreateIssuerRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var payload createIssuerPayload
	if err := decodePayload(r, &payload); err != nil {
		return nil, err
	}
	return &createIssuerRequest{
		input: badges.IssuerInput{
			Name:        payload.Name,
			URL:         payload.URL,
			Description: payload.Description,
			Email:       payload.Email,
			Image:       payload.Image,
		},
	}, nil
}

func decodeCreateClassRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var payload createClassPayload
	if err := decodePayload(r, &payload); err != nil {
		return nil, err
	}
	return &createClassRequest{
		input: badges.ClassInput{
			Name:        payload.Name,
			Description: payload.Description,
			Criteria:    payload.Criteria,
			Image:       payload.Image,
		},
	}, nil
}

func decodeCreateBadgeRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	class, ok := vars[classVarKey]
	if !ok {
		return nil, &BadRequestErr{Message: classVarMissingMsg}
	}

	var payload createBadgePayload
	if err := decodePayload(r, &payload); err != nil {
		return nil, err
	}
	return &createBadgeRequest{class: class, email: payload.Email}, nil
}

func decodeListClassesRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	return nil, nil
}

func decodePayload(r *http.Request, payload interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return &BadRequestErr{Message: "failed to unmarshal json"}
	}
	if err := validate.Struct(payload); err != nil {
		return &BadRequestErr{Message: err.Error()}
	}
	return nil
}

func encodeCreatedResponse(ctx context.Context, rw http.ResponseWriter, response interface{}) error {
	data, err := json.Marshal(response)
	if err != nil {
		return err
	}
	rw.Header().Add("Content-Type", "application/json")
	rw.WriteHeader(http.StatusCreated)
	rw.Write(data)
	return nil
}

func encodeListClassesResponse(ctx context.Context, rw http.ResponseWriter, response interface{}) error {
	classes, ok := response.([]badges.ClassRecord)
	if !ok {
		return ErrCasting
	}
	if classes == nil {
		classes = []badges.ClassRecord{}
	}
	data, err := json.Marshal(classes)
	if err != nil {
		return err
	}
	rw.Header().Add("Content-Type", "application/json")
	rw.Write(data)
	return nil
}

// encodeError maps the engine's error taxonomy onto HTTP statuses: domain
// rejections to 409/404, remote failures to 502, malformed input to 400.
func encodeError(ctx context.Context, err error, w http.ResponseWriter) {
	w.Header().Set(ErrorHeaderKey, err.Error())
	w.WriteHeader(statusOf(err))
}

func statusOf(err error) int {
	if sc, ok := err.(kithttp.StatusCoder); ok {
		return sc.StatusCode()
	}

	switch {
	case errors.Is(err, badges.ErrClassExists):
		return http.StatusConflict
	case errors.Is(err, badges.ErrNoSuchClass):
		return http.StatusNotFound
	case errors.Is(err, badges.ErrClassNameEmpty):
		return http.StatusBadRequest
	}

	var writeErr remote.WriteError
	if errors.As(err, &writeErr) {
		return http.StatusBadGateway
	}
	var readErr remote.ReadError
	if errors.As(err, &readErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

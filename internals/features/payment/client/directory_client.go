package client

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"tuitionpay_backend/internals/constants"
	dto "tuitionpay_backend/internals/features/payment/dto"
)

var (
	// ErrRemoteUnavailable: the service could not be reached at all.
	ErrRemoteUnavailable = errors.New("the requested resource couldn't access due to unavailability")
	// ErrRemoteError: the service answered, but with an error status or a
	// body this client can't make sense of.
	ErrRemoteError = errors.New("the remote service returned an unexpected response")
)

// DirectoryClient fetches student and class-location data from the sibling
// services. Single attempt, synchronous; retries belong to the caller.
type DirectoryClient interface {
	CheckStudentExists(studentID, token string) (bool, error)
	FetchAllStudents(token string) (map[string]dto.StudentRecord, error)
	FetchAllLocations(token string) (map[string]dto.LocationRecord, error)
}

// HTTPDirectoryClient talks to the student and location services over HTTP.
// Base URLs are injected here, not read from ambient state.
type HTTPDirectoryClient struct {
	httpClient      *http.Client
	studentBaseURL  string
	locationBaseURL string
}

func NewDirectoryClient(studentBaseURL, locationBaseURL string) *HTTPDirectoryClient {
	return &HTTPDirectoryClient{
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		studentBaseURL:  studentBaseURL,
		locationBaseURL: locationBaseURL,
	}
}

type studentEnvelope struct {
	Message    string            `json:"message"`
	StatusCode int               `json:"statusCode"`
	Data       dto.StudentRecord `json:"data"`
}

type studentListEnvelope struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Data       struct {
		Students []dto.StudentRecord `json:"students"`
	} `json:"data"`
}

type locationListEnvelope struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Data       struct {
		Locations []dto.LocationRecord `json:"locations"`
	} `json:"data"`
}

// CheckStudentExists asks the student service for one student. The student
// exists only when the envelope's embedded statusCode equals the documented
// "student found" code; any other embedded code, HTTP 200 included, means no.
func (c *HTTPDirectoryClient) CheckStudentExists(studentID, token string) (bool, error) {
	body, err := c.get(c.studentBaseURL+"/studentById/"+studentID, token)
	if err != nil {
		return false, err
	}

	var envelope studentEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return false, fmt.Errorf("%w: %v", ErrRemoteError, err)
	}
	return envelope.StatusCode == constants.StatusCodeStudentFound, nil
}

// FetchAllStudents returns the full student directory keyed by studentId.
func (c *HTTPDirectoryClient) FetchAllStudents(token string) (map[string]dto.StudentRecord, error) {
	body, err := c.get(c.studentBaseURL+"/allStudents", token)
	if err != nil {
		return nil, err
	}

	var envelope studentListEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteError, err)
	}

	students := make(map[string]dto.StudentRecord, len(envelope.Data.Students))
	for _, s := range envelope.Data.Students {
		students[s.StudentID] = s
	}
	return students, nil
}

// FetchAllLocations returns the class-location directory keyed by tuitionClassId.
func (c *HTTPDirectoryClient) FetchAllLocations(token string) (map[string]dto.LocationRecord, error) {
	body, err := c.get(c.locationBaseURL+"/allLocations", token)
	if err != nil {
		return nil, err
	}

	var envelope locationListEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteError, err)
	}

	locations := make(map[string]dto.LocationRecord, len(envelope.Data.Locations))
	for _, l := range envelope.Data.Locations {
		locations[l.TuitionClassID] = l
	}
	return locations, nil
}

func (c *HTTPDirectoryClient) get(url, token string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteError, err)
	}
	req.Header.Set(constants.TokenHeader, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d from %s", ErrRemoteError, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	return body, nil
}

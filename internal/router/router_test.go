package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeroenvanhattem/vethub/internal/router"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{MetricsEnabled: true}))
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	out, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), "body=%s", string(b))
	return v
}

type idResp struct {
	ID int64 `json:"id"`
}

type errorResp struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
	Method       string `json:"method"`
	URI          string `json:"uri"`
	StatusCode   int    `json:"statusCode"`
	RequestID    string `json:"requestId"`
	Errors       []struct {
		Field   string `json:"field"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func create(t *testing.T, baseURL, path string, body any) int64 {
	t.Helper()
	st, b := doReq(t, baseURL, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, st, "POST %s body=%s", path, string(b))
	return decode[idResp](t, b).ID
}

func TestHTTP_EndToEnd_OwnerPetLifecycle(t *testing.T) {
	ts := newServer(t)

	typeID := create(t, ts.URL, "/v1/pet-types", map[string]any{"name": "cat"})
	require.Equal(t, int64(1), typeID)

	// 1) Alta de owner
	ownerID := create(t, ts.URL, "/v1/owners", map[string]any{
		"firstName": "George",
		"lastName":  "Franklin",
		"address":   "110 W. Liberty St.",
		"city":      "Madison",
		"telephone": "6085551023",
	})

	// 2) Mascota bajo ese owner
	st, b := doReq(t, ts.URL, http.MethodPost, fmt.Sprintf("/v1/owners/%d/pets", ownerID), map[string]any{
		"name":      "Leo",
		"birthDate": "2020-09-07",
		"typeId":    typeID,
	})
	require.Equal(t, http.StatusCreated, st, "body=%s", string(b))

	pet := decode[struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		BirthDate string `json:"birthDate"`
		OwnerID   int64  `json:"ownerId"`
		Type      struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"type"`
	}](t, b)
	assert.Equal(t, ownerID, pet.OwnerID)
	assert.Equal(t, "2020-09-07", pet.BirthDate)
	assert.Equal(t, "cat", pet.Type.Name)

	// 3) El owner lista exactamente esa mascota
	st, b = doReq(t, ts.URL, http.MethodGet, fmt.Sprintf("/v1/owners/%d", ownerID), nil)
	require.Equal(t, http.StatusOK, st)
	owner := decode[struct {
		FirstName string `json:"firstName"`
		Email     string `json:"email"`
		Pets      []struct {
			ID       int64  `json:"id"`
			Name     string `json:"name"`
			TypeName string `json:"typeName"`
		} `json:"pets"`
	}](t, b)
	assert.Equal(t, "George", owner.FirstName)
	assert.Equal(t, "", owner.Email)
	require.Len(t, owner.Pets, 1)
	assert.Equal(t, pet.ID, owner.Pets[0].ID)
	assert.Equal(t, "cat", owner.Pets[0].TypeName)

	// 4) Visita anidada, visible en la mascota
	create(t, ts.URL, fmt.Sprintf("/v1/owners/%d/pets/%d/visits", ownerID, pet.ID), map[string]any{
		"date":        "2024-03-01",
		"description": "rabies shot",
	})
	st, b = doReq(t, ts.URL, http.MethodGet, fmt.Sprintf("/v1/pets/%d", pet.ID), nil)
	require.Equal(t, http.StatusOK, st)
	withVisits := decode[struct {
		Visits []struct {
			Date        string `json:"date"`
			Description string `json:"description"`
		} `json:"visits"`
	}](t, b)
	require.Len(t, withVisits.Visits, 1)
	assert.Equal(t, "2024-03-01", withVisits.Visits[0].Date)

	// 5) Borrar owner borra la mascota
	st, _ = doReq(t, ts.URL, http.MethodDelete, fmt.Sprintf("/v1/owners/%d", ownerID), nil)
	require.Equal(t, http.StatusNoContent, st)

	st, b = doReq(t, ts.URL, http.MethodGet, fmt.Sprintf("/v1/pets/%d", pet.ID), nil)
	require.Equal(t, http.StatusNotFound, st)
	assert.Equal(t, "ERR-0003", decode[errorResp](t, b).ErrorCode)

	st, b = doReq(t, ts.URL, http.MethodGet, "/v1/visits", nil)
	require.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, `[]`, string(b))
}

func TestHTTP_OwnerValidation(t *testing.T) {
	ts := newServer(t)

	st, b := doReq(t, ts.URL, http.MethodPost, "/v1/owners", map[string]any{
		"firstName": "",
		"lastName":  "Franklin",
		"telephone": "608-555",
		"email":     "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, st)

	e := decode[errorResp](t, b)
	assert.Equal(t, "ERR-0010", e.ErrorCode)
	assert.Equal(t, "The request contains invalid data.", e.ErrorMessage)
	assert.Equal(t, http.MethodPost, e.Method)
	assert.Equal(t, "/v1/owners", e.URI)
	assert.Equal(t, http.StatusBadRequest, e.StatusCode)
	assert.NotEmpty(t, e.RequestID)

	codes := make([]string, 0, len(e.Errors))
	for _, v := range e.Errors {
		codes = append(codes, v.Code)
	}
	assert.ElementsMatch(t, []string{"FIRST_NAME_REQUIRED", "TELEPHONE_INVALID_FORMAT", "EMAIL_INVALID_FORMAT"}, codes)

	// sin body
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/v1/owners", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	missing := decode[errorResp](t, raw)
	require.Len(t, missing.Errors, 1)
	assert.Equal(t, "BODY_IS_MISSING", missing.Errors[0].Code)
}

func TestHTTP_OwnerSearchByLastName(t *testing.T) {
	ts := newServer(t)

	create(t, ts.URL, "/v1/owners", map[string]any{"firstName": "George", "lastName": "Franklin"})
	create(t, ts.URL, "/v1/owners", map[string]any{"firstName": "Betty", "lastName": "Davis"})
	create(t, ts.URL, "/v1/owners", map[string]any{"firstName": "Harold", "lastName": "Davis"})

	st, b := doReq(t, ts.URL, http.MethodGet, "/v1/owners?lastName=Davis", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Len(t, decode[[]idResp](t, b), 2)

	st, b = doReq(t, ts.URL, http.MethodGet, "/v1/owners?lastName=davis", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Empty(t, decode[[]idResp](t, b))

	st, b = doReq(t, ts.URL, http.MethodGet, "/v1/owners", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Len(t, decode[[]idResp](t, b), 3)
}

func TestHTTP_NotFoundAndBadPath(t *testing.T) {
	ts := newServer(t)

	cases := []struct {
		path string
		code string
	}{
		{"/v1/owners/99", "ERR-0002"},
		{"/v1/pets/99", "ERR-0003"},
		{"/v1/pet-types/99", "ERR-0004"},
		{"/v1/vets/99", "ERR-0005"},
		{"/v1/specialties/99", "ERR-0006"},
		{"/v1/visits/99", "ERR-0007"},
		{"/v1/vaccinations/99", "ERR-0008"},
		{"/v1/appointments/99", "ERR-0009"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			st, b := doReq(t, ts.URL, http.MethodGet, tc.path, nil)
			require.Equal(t, http.StatusNotFound, st, "body=%s", string(b))
			assert.Equal(t, tc.code, decode[errorResp](t, b).ErrorCode)
		})
	}

	st, b := doReq(t, ts.URL, http.MethodGet, "/v1/owners/abc", nil)
	require.Equal(t, http.StatusBadRequest, st)
	e := decode[errorResp](t, b)
	require.Len(t, e.Errors, 1)
	assert.Equal(t, "OWNER_ID_INVALID_FORMAT", e.Errors[0].Code)
}

func TestHTTP_WritesOnMissingIDsAreNotFound(t *testing.T) {
	ts := newServer(t)

	typeID := create(t, ts.URL, "/v1/pet-types", map[string]any{"name": "cat"})
	ownerID := create(t, ts.URL, "/v1/owners", map[string]any{"firstName": "George", "lastName": "Franklin"})
	petID := create(t, ts.URL, fmt.Sprintf("/v1/owners/%d/pets", ownerID), map[string]any{
		"name": "Leo", "birthDate": "2020-09-07", "typeId": typeID,
	})
	nested := fmt.Sprintf("/v1/owners/%d/pets/%d", ownerID, petID)

	owner := map[string]any{"firstName": "A", "lastName": "B"}
	pet := map[string]any{"name": "Rex", "birthDate": "2019-01-01", "typeId": typeID}
	named := map[string]any{"name": "x"}
	vet := map[string]any{"firstName": "A", "lastName": "B"}
	visit := map[string]any{"date": "2024-01-10", "description": "checkup"}
	vaccination := map[string]any{"vaccineName": "rabies", "vaccinationDate": "2024-01-10"}
	appointment := map[string]any{"scheduledDateTime": "2030-01-01T10:00:00", "reason": "x", "status": "SCHEDULED"}

	cases := []struct {
		method string
		path   string
		body   any
		code   string
	}{
		{http.MethodPut, "/v1/owners/99", owner, "ERR-0002"},
		{http.MethodDelete, "/v1/owners/99", nil, "ERR-0002"},
		{http.MethodPut, "/v1/pets/99", pet, "ERR-0003"},
		{http.MethodDelete, "/v1/pets/99", nil, "ERR-0003"},
		{http.MethodPut, fmt.Sprintf("/v1/owners/%d/pets/99", ownerID), pet, "ERR-0003"},
		{http.MethodDelete, fmt.Sprintf("/v1/owners/%d/pets/99", ownerID), nil, "ERR-0003"},
		{http.MethodPut, "/v1/pet-types/99", named, "ERR-0004"},
		{http.MethodDelete, "/v1/pet-types/99", nil, "ERR-0004"},
		{http.MethodPut, "/v1/vets/99", vet, "ERR-0005"},
		{http.MethodDelete, "/v1/vets/99", nil, "ERR-0005"},
		{http.MethodPut, "/v1/specialties/99", named, "ERR-0006"},
		{http.MethodDelete, "/v1/specialties/99", nil, "ERR-0006"},
		{http.MethodPut, "/v1/visits/99", visit, "ERR-0007"},
		{http.MethodDelete, "/v1/visits/99", nil, "ERR-0007"},
		{http.MethodPut, nested + "/visits/99", visit, "ERR-0007"},
		{http.MethodDelete, nested + "/visits/99", nil, "ERR-0007"},
		{http.MethodPut, nested + "/vaccinations/99", vaccination, "ERR-0008"},
		{http.MethodDelete, nested + "/vaccinations/99", nil, "ERR-0008"},
		{http.MethodPut, "/v1/appointments/99", appointment, "ERR-0009"},
		{http.MethodPatch, "/v1/appointments/99/cancel", nil, "ERR-0009"},
		{http.MethodPatch, "/v1/appointments/99/complete", nil, "ERR-0009"},
		{http.MethodDelete, "/v1/appointments/99", nil, "ERR-0009"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			st, b := doReq(t, ts.URL, tc.method, tc.path, tc.body)
			require.Equal(t, http.StatusNotFound, st, "body=%s", string(b))
			e := decode[errorResp](t, b)
			assert.Equal(t, tc.code, e.ErrorCode)
			assert.Equal(t, tc.method, e.Method)
		})
	}

	// nada de lo anterior tocó los datos existentes
	st, _ := doReq(t, ts.URL, http.MethodGet, nested, nil)
	assert.Equal(t, http.StatusOK, st)
}

func TestHTTP_PetOfAnotherOwnerIsNotFound(t *testing.T) {
	ts := newServer(t)

	typeID := create(t, ts.URL, "/v1/pet-types", map[string]any{"name": "dog"})
	george := create(t, ts.URL, "/v1/owners", map[string]any{"firstName": "George", "lastName": "Franklin"})
	betty := create(t, ts.URL, "/v1/owners", map[string]any{"firstName": "Betty", "lastName": "Davis"})
	petID := create(t, ts.URL, fmt.Sprintf("/v1/owners/%d/pets", george), map[string]any{
		"name": "Rosy", "birthDate": "2019-04-17", "typeId": typeID,
	})

	st, b := doReq(t, ts.URL, http.MethodGet, fmt.Sprintf("/v1/owners/%d/pets/%d", betty, petID), nil)
	require.Equal(t, http.StatusNotFound, st)
	assert.Equal(t, "ERR-0003", decode[errorResp](t, b).ErrorCode)

	// fecha de nacimiento futura
	st, b = doReq(t, ts.URL, http.MethodPost, fmt.Sprintf("/v1/owners/%d/pets", george), map[string]any{
		"name": "Future", "birthDate": time.Now().AddDate(1, 0, 0).Format("2006-01-02"), "typeId": typeID,
	})
	require.Equal(t, http.StatusBadRequest, st)
	e := decode[errorResp](t, b)
	require.Len(t, e.Errors, 1)
	assert.Equal(t, "BIRTH_DATE_NOT_IN_PAST", e.Errors[0].Code)
}

func TestHTTP_VetsAndAppointments(t *testing.T) {
	ts := newServer(t)

	surgery := create(t, ts.URL, "/v1/specialties", map[string]any{"name": "surgery"})
	radiology := create(t, ts.URL, "/v1/specialties", map[string]any{"name": "radiology"})

	st, b := doReq(t, ts.URL, http.MethodPost, "/v1/vets", map[string]any{
		"firstName":    "Linda",
		"lastName":     "Douglas",
		"specialtyIds": []int64{radiology, surgery, 999},
	})
	require.Equal(t, http.StatusCreated, st, "body=%s", string(b))
	vet := decode[struct {
		ID          int64 `json:"id"`
		Specialties []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"specialties"`
	}](t, b)
	require.Len(t, vet.Specialties, 2)
	assert.Equal(t, surgery, vet.Specialties[0].ID)
	assert.Equal(t, radiology, vet.Specialties[1].ID)

	typeID := create(t, ts.URL, "/v1/pet-types", map[string]any{"name": "cat"})
	ownerID := create(t, ts.URL, "/v1/owners", map[string]any{"firstName": "Jean", "lastName": "Coleman"})
	petID := create(t, ts.URL, fmt.Sprintf("/v1/owners/%d/pets", ownerID), map[string]any{
		"name": "Max", "birthDate": "2018-06-01", "typeId": typeID,
	})

	when := time.Now().Add(72 * time.Hour).UTC().Format("2006-01-02T15:04:05")
	st, b = doReq(t, ts.URL, http.MethodPost, "/v1/appointments", map[string]any{
		"scheduledDateTime": when,
		"reason":            "annual checkup",
		"petId":             petID,
		"vetId":             vet.ID,
	})
	require.Equal(t, http.StatusCreated, st, "body=%s", string(b))

	type apptResp struct {
		ID                int64  `json:"id"`
		ScheduledDateTime string `json:"scheduledDateTime"`
		Status            string `json:"status"`
		PetName           string `json:"petName"`
		VetFirstName      string `json:"vetFirstName"`
		VetLastName       string `json:"vetLastName"`
	}
	appt := decode[apptResp](t, b)
	assert.Equal(t, "SCHEDULED", appt.Status)
	assert.Equal(t, when, appt.ScheduledDateTime)
	assert.Equal(t, "Max", appt.PetName)
	assert.Equal(t, "Douglas", appt.VetLastName)

	st, b = doReq(t, ts.URL, http.MethodPatch, fmt.Sprintf("/v1/appointments/%d/cancel", appt.ID), nil)
	require.Equal(t, http.StatusOK, st)
	assert.Equal(t, "CANCELLED", decode[apptResp](t, b).Status)

	st, b = doReq(t, ts.URL, http.MethodPatch, fmt.Sprintf("/v1/appointments/%d/complete", appt.ID), nil)
	require.Equal(t, http.StatusOK, st)
	assert.Equal(t, "COMPLETED", decode[apptResp](t, b).Status)

	st, b = doReq(t, ts.URL, http.MethodGet, fmt.Sprintf("/v1/vets/%d/appointments", vet.ID), nil)
	require.Equal(t, http.StatusOK, st)
	assert.Len(t, decode[[]apptResp](t, b), 1)

	// pasado => 400
	st, b = doReq(t, ts.URL, http.MethodPost, "/v1/appointments", map[string]any{
		"scheduledDateTime": "2001-01-01T10:00:00",
		"reason":            "late",
		"petId":             petID,
		"vetId":             vet.ID,
	})
	require.Equal(t, http.StatusBadRequest, st)
	assert.Equal(t, "SCHEDULED_DATE_TIME_NOT_IN_FUTURE", decode[errorResp](t, b).Errors[0].Code)

	// borrar el vet se lleva sus turnos
	st, _ = doReq(t, ts.URL, http.MethodDelete, fmt.Sprintf("/v1/vets/%d", vet.ID), nil)
	require.Equal(t, http.StatusNoContent, st)
	st, _ = doReq(t, ts.URL, http.MethodGet, fmt.Sprintf("/v1/appointments/%d", appt.ID), nil)
	assert.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_VaccinationsNested(t *testing.T) {
	ts := newServer(t)

	typeID := create(t, ts.URL, "/v1/pet-types", map[string]any{"name": "dog"})
	ownerID := create(t, ts.URL, "/v1/owners", map[string]any{"firstName": "Eduardo", "lastName": "Rodriquez"})
	petID := create(t, ts.URL, fmt.Sprintf("/v1/owners/%d/pets", ownerID), map[string]any{
		"name": "Jewel", "birthDate": "2021-03-07", "typeId": typeID,
	})

	st, b := doReq(t, ts.URL, http.MethodPost, fmt.Sprintf("/v1/owners/%d/pets/%d/vaccinations", ownerID, petID), map[string]any{
		"vaccineName":     "distemper",
		"vaccinationDate": "2024-02-10",
		"nextDueDate":     "2025-02-10",
	})
	require.Equal(t, http.StatusCreated, st, "body=%s", string(b))

	vac := decode[struct {
		ID          int64   `json:"id"`
		PetName     string  `json:"petName"`
		NextDueDate *string `json:"nextDueDate"`
	}](t, b)
	assert.Equal(t, "Jewel", vac.PetName)
	require.NotNil(t, vac.NextDueDate)
	assert.Equal(t, "2025-02-10", *vac.NextDueDate)

	st, b = doReq(t, ts.URL, http.MethodGet, "/v1/vaccinations", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Len(t, decode[[]idResp](t, b), 1)

	st, _ = doReq(t, ts.URL, http.MethodPost, fmt.Sprintf("/v1/owners/%d/pets/%d/vaccinations", ownerID, petID), map[string]any{
		"vaccineName":     "distemper",
		"vaccinationDate": "10/02/2024",
	})
	assert.Equal(t, http.StatusBadRequest, st)
}

func TestHTTP_PetTypeInUseCannotBeDeleted(t *testing.T) {
	ts := newServer(t)

	typeID := create(t, ts.URL, "/v1/pet-types", map[string]any{"name": "hamster"})
	ownerID := create(t, ts.URL, "/v1/owners", map[string]any{"firstName": "Carlos", "lastName": "Estaban"})
	create(t, ts.URL, fmt.Sprintf("/v1/owners/%d/pets", ownerID), map[string]any{
		"name": "Lucky", "birthDate": "2022-08-06", "typeId": typeID,
	})

	st, b := doReq(t, ts.URL, http.MethodDelete, fmt.Sprintf("/v1/pet-types/%d", typeID), nil)
	require.Equal(t, http.StatusInternalServerError, st)
	assert.Equal(t, "ERR-0001", decode[errorResp](t, b).ErrorCode)

	st, _ = doReq(t, ts.URL, http.MethodGet, fmt.Sprintf("/v1/pet-types/%d", typeID), nil)
	assert.Equal(t, http.StatusOK, st)
}

func TestHTTP_Actuator(t *testing.T) {
	ts := newServer(t)

	st, b := doReq(t, ts.URL, http.MethodGet, "/v1/public/actuator/health", nil)
	require.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, `{"status":"UP"}`, string(b))

	st, b = doReq(t, ts.URL, http.MethodGet, "/v1/public/actuator/metrics", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(b), "vethub_http_requests_total")
}

func TestHTTP_VetUpdateReplacesSpecialties(t *testing.T) {
	ts := newServer(t)

	surgery := create(t, ts.URL, "/v1/specialties", map[string]any{"name": "surgery"})
	radiology := create(t, ts.URL, "/v1/specialties", map[string]any{"name": "radiology"})
	dentistry := create(t, ts.URL, "/v1/specialties", map[string]any{"name": "dentistry"})

	vetID := create(t, ts.URL, "/v1/vets", map[string]any{
		"firstName": "Helen", "lastName": "Leary", "specialtyIds": []int64{surgery, radiology},
	})

	type vetResp struct {
		FirstName   string `json:"firstName"`
		Specialties []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"specialties"`
	}

	st, b := doReq(t, ts.URL, http.MethodPut, fmt.Sprintf("/v1/vets/%d", vetID), map[string]any{
		"firstName": "Helena", "lastName": "Leary", "specialtyIds": []int64{dentistry, dentistry, 999},
	})
	require.Equal(t, http.StatusOK, st, "body=%s", string(b))
	got := decode[vetResp](t, b)
	assert.Equal(t, "Helena", got.FirstName)
	require.Len(t, got.Specialties, 1)
	assert.Equal(t, dentistry, got.Specialties[0].ID)
	assert.Equal(t, "dentistry", got.Specialties[0].Name)

	st, b = doReq(t, ts.URL, http.MethodGet, fmt.Sprintf("/v1/vets/%d", vetID), nil)
	require.Equal(t, http.StatusOK, st)
	require.Len(t, decode[vetResp](t, b).Specialties, 1)

	// sin specialtyIds el vet queda sin especialidades
	st, b = doReq(t, ts.URL, http.MethodPut, fmt.Sprintf("/v1/vets/%d", vetID), map[string]any{
		"firstName": "Helena", "lastName": "Leary",
	})
	require.Equal(t, http.StatusOK, st, "body=%s", string(b))
	assert.Empty(t, decode[vetResp](t, b).Specialties)
}

func TestHTTP_AppointmentCreateResolvesPetBeforeVet(t *testing.T) {
	ts := newServer(t)

	typeID := create(t, ts.URL, "/v1/pet-types", map[string]any{"name": "dog"})
	ownerID := create(t, ts.URL, "/v1/owners", map[string]any{"firstName": "Eduardo", "lastName": "Rodriquez"})
	petID := create(t, ts.URL, fmt.Sprintf("/v1/owners/%d/pets", ownerID), map[string]any{
		"name": "Jewel", "birthDate": "2015-03-02", "typeId": typeID,
	})
	when := time.Now().Add(48 * time.Hour).UTC().Format("2006-01-02T15:04:05")

	st, b := doReq(t, ts.URL, http.MethodPost, "/v1/appointments", map[string]any{
		"scheduledDateTime": when, "reason": "x", "petId": 99, "vetId": 98,
	})
	require.Equal(t, http.StatusNotFound, st)
	assert.Equal(t, "ERR-0003", decode[errorResp](t, b).ErrorCode)

	st, b = doReq(t, ts.URL, http.MethodPost, "/v1/appointments", map[string]any{
		"scheduledDateTime": when, "reason": "x", "petId": petID, "vetId": 98,
	})
	require.Equal(t, http.StatusNotFound, st)
	assert.Equal(t, "ERR-0005", decode[errorResp](t, b).ErrorCode)

	st, b = doReq(t, ts.URL, http.MethodGet, "/v1/appointments", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Empty(t, decode[[]idResp](t, b))
}

package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/AlexanderSS88/adboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvertisingHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, _ := testutil.NewUserBuilder().
		WithName("adv_creator").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]any
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful creation without any token",
			request: map[string]any{
				"owner_id":    owner.ID,
				"title":       "garden gnome",
				"description": "slightly weathered",
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result struct {
					Status string `json:"status"`
					AdvID  uint   `json:"adv_id"`
				}
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "created", result.Status)
				assert.NotZero(t, result.AdvID)
			},
		},
		{
			name: "missing title",
			request: map[string]any{
				"owner_id": owner.ID,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing owner",
			request: map[string]any{
				"title": "orphan listing",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate title",
			request: map[string]any{
				"owner_id": owner.ID,
				"title":    "garden gnome",
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.DoJSON(t, http.MethodPost, ts.URL("/user/adv/"), "", tt.request)
			testutil.AssertStatusCode(t, resp, tt.expectedStatus)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAdvertisingHandler_Get(t *testing.T) {
	ts := testutil.NewTestServer(t)

	adv := testutil.NewAdvertisingBuilder().
		WithTitle("readable listing").
		Build(t, ts.DB.DB)

	t.Run("existing advertising", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodGet, ts.URL("/user/adv/")+itoa(adv.ID), "", nil)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result struct {
			ID    uint   `json:"id"`
			Title string `json:"title"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, adv.ID, result.ID)
		assert.Equal(t, "readable listing", result.Title)
	})

	t.Run("nonexistent advertising", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodGet, ts.URL("/user/adv/99999"), "", nil)
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Advertising not found")
	})
}

func TestAdvertisingHandler_Update(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, _ := testutil.NewUserBuilder().
		WithName("patch_owner").
		Build(t, ts.DB.DB)
	adv := testutil.NewAdvertisingBuilder().
		WithOwner(owner).
		WithTitle("before patch").
		Build(t, ts.DB.DB)

	stranger, _ := testutil.NewUserBuilder().
		WithName("patch_stranger").
		Build(t, ts.DB.DB)
	strangerToken := testutil.NewTokenBuilder().ForUser(stranger).Build(t, ts.DB.DB)

	t.Run("no token", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPatch, ts.URL("/user/adv/")+itoa(adv.ID), "",
			map[string]any{"title": "after patch"})
		testutil.AssertErrorResponse(t, resp, http.StatusForbidden, "incorrect token")
	})

	t.Run("any valid token suffices, ownership is not checked", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPatch, ts.URL("/user/adv/")+itoa(adv.ID),
			strangerToken.ID.String(), map[string]any{"title": "after patch"})
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		got, err := ts.Repos.Advertising.GetByID(context.Background(), adv.ID)
		require.NoError(t, err)
		assert.Equal(t, "after patch", got.Title)
		assert.Equal(t, owner.ID, got.OwnerID, "absent fields stay untouched")
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPatch, ts.URL("/user/adv/")+itoa(adv.ID),
			strangerToken.ID.String(), map[string]any{"price": 100})
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})

	t.Run("nonexistent advertising", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodPatch, ts.URL("/user/adv/99999"),
			strangerToken.ID.String(), map[string]any{"title": "nothing here"})
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Advertising not found")
	})
}

func TestAdvertisingHandler_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, _ := testutil.NewUserBuilder().
		WithName("delete_owner").
		Build(t, ts.DB.DB)
	ownerToken := testutil.NewTokenBuilder().ForUser(owner).Build(t, ts.DB.DB)
	adv := testutil.NewAdvertisingBuilder().
		WithOwner(owner).
		WithTitle("deletable listing").
		Build(t, ts.DB.DB)

	stranger, _ := testutil.NewUserBuilder().
		WithName("delete_stranger").
		Build(t, ts.DB.DB)
	strangerToken := testutil.NewTokenBuilder().ForUser(stranger).Build(t, ts.DB.DB)

	t.Run("no token", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodDelete, ts.URL("/user/adv/")+itoa(adv.ID), "", nil)
		testutil.AssertErrorResponse(t, resp, http.StatusForbidden, "incorrect token")
	})

	t.Run("non-owner token", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodDelete, ts.URL("/user/adv/")+itoa(adv.ID),
			strangerToken.ID.String(), nil)
		testutil.AssertErrorResponse(t, resp, http.StatusForbidden, "token incorrect")
	})

	t.Run("owner token", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodDelete, ts.URL("/user/adv/")+itoa(adv.ID),
			ownerToken.ID.String(), nil)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		resp = testutil.DoJSON(t, http.MethodGet, ts.URL("/user/adv/")+itoa(adv.ID), "", nil)
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Advertising not found")
	})

	t.Run("nonexistent advertising", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodDelete, ts.URL("/user/adv/99999"),
			ownerToken.ID.String(), nil)
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Advertising not found")
	})
}

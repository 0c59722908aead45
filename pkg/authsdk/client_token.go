package authsdk

import (
	"context"
	"net/http"
	"net/url"
)

// RequestToken exchanges client credentials for a bearer token. The service
// hands back the client's live token when it has one.
//
// Credentials the service looked at and refused come back as *RejectedError.
// Other non-200 answers come back as *APIError.
func (c *SDKClient) RequestToken(ctx context.Context, clientID, clientSecret string) (*TokenDocument, error) {
	q := url.Values{
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"grant_type":    {GrantTypeToken},
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/oauth/secret?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	// A 200 carries either the token document or a negative result.
	var body struct {
		TokenDocument
		VerificationResult
	}
	if err := decodeJSON(resp, &body, http.StatusOK); err != nil {
		return nil, err
	}
	if body.Token == "" {
		return nil, &RejectedError{Result: body.VerificationResult}
	}

	return &body.TokenDocument, nil
}

// VerifyToken asks the service whether token is live. Both verified and
// negative results are returned without error; the error is reserved for
// requests the service could not answer.
func (c *SDKClient) VerifyToken(ctx context.Context, token string) (*VerificationResult, error) {
	headers := map[string]string{"Authorization": "Bearer " + token}

	resp, err := c.doRequest(ctx, http.MethodGet, "/oauth/verifyToken", nil, headers)
	if err != nil {
		return nil, err
	}

	var res VerificationResult
	if err := decodeJSON(resp, &res, http.StatusOK, http.StatusUnauthorized); err != nil {
		return nil, err
	}

	return &res, nil
}

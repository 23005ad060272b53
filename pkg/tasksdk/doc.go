/*
Package tasksdk provides a client SDK for the taskboard service.

# Client vs Session

The package is organized around two main types:

  - Client: unauthenticated operations (register, login, refresh, health)
  - Session: authenticated operations with automatic token refresh

	client := tasksdk.NewClient("http://localhost:8080")

	_, err := client.Register(ctx, tasksdk.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Sup3r$ecret",
	})

	// otpCode is empty unless the account has TOTP enabled
	session, err := client.Authenticate(ctx, "alice", "Sup3r$ecret", "")

	task, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{
		Title:    "Buy milk",
		Deadline: time.Now().Add(24 * time.Hour),
	})

# Token Refresh

A Session reads the expiry of its access token from the exp claim and
refreshes it 30 seconds early. Refresh tokens are single use, so callers
that persist a session must store RefreshToken() again after using it.
Stored tokens are resumed with Client.NewSessionFromTokens.

# Errors

Every non-200 response is returned as an *APIError carrying the HTTP
status, the machine readable code and a human readable detail:

	if tasksdk.IsNotFound(err) {
		// task does not exist or belongs to another user
	}
*/
package tasksdk

package api

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type redirectResponse struct {
	RedirectTo string `json:"redirectTo"`
}

// userRequest is shared by create and update: on update, empty fields
// leave the account unchanged.
type userRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type newsRequest struct {
	Heading     string `json:"heading"`
	Content     string `json:"content"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	WebsiteLink string `json:"websiteLink"`
}

// newsUpdateRequest distinguishes omitted fields from empty ones; id
// and timestamp are not listed because they are immutable.
type newsUpdateRequest struct {
	Heading     *string `json:"heading"`
	Content     *string `json:"content"`
	Source      *string `json:"source"`
	Category    *string `json:"category"`
	WebsiteLink *string `json:"websiteLink"`
}

type categoryRequest struct {
	Category string `json:"category"`
}

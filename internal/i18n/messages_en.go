package i18n

var enMessages = map[string]string{
	"error.network":  "A network error occurred.",
	"error.timeout":  "The request timed out.",
	"error.login":    "Something went wrong while logging in.",
	"error.register": "Something went wrong while signing up.",
	"error.oauth":    "Something went wrong with social login.",

	"app.title":       "Ajou Eats",
	"nav.home":        "Home",
	"nav.list":        "Restaurants",
	"nav.popular":     "Popular",
	"nav.submit":      "Suggest",
	"nav.dashboard":   "Dashboard",
	"nav.login":       "Log in",
	"nav.register":    "Sign up",
	"nav.logout":      "Log out",
	"nav.checking":    "Checking...",
	"nav.admin_badge": "(admin)",

	"guard.pending":      "Checking your session...",
	"guard.redirecting":  "Redirecting to login...",
	"guard.denied_title": "Access denied",
	"guard.denied_body":  "This page is for administrators only.",
	"guard.denied_help":  "esc: go back",

	"flash.logged_in":          "Logged in.",
	"flash.logged_out":         "Logged out.",
	"flash.registered":         "Your account has been created.",
	"flash.server_unreachable": "Cannot reach the server.",

	"common.loading": "Loading...",
	"common.saving":  "Saving...",
	"format.date":    "Jan 2, 2006",

	"home.tagline":  "Restaurants around Ajou University at a glance",
	"home.greeting": "Hello, %s!",
	"home.help":     "enter: restaurants · p: popular · digit/alt+digit: menu",

	"col.name":     "Name",
	"col.category": "Category",
	"col.location": "Location",
	"col.price":    "Price",
	"col.rating":   "Rating",
	"col.likes":    "Likes",

	"list.title":              "Restaurants",
	"list.all_categories":     "All",
	"list.filter_placeholder": "Search by name, category or location",
	"list.empty":              "No restaurants yet.",
	"list.count":              "%d of %d",
	"list.load_failed":        "Could not load restaurants.",
	"list.help":               "↑/↓: move · enter: details · /: search · c: category · r: reload · esc: back",

	"popular.title": "Popular restaurants",
	"popular.likes": "♥ %d",
	"popular.help":  "↑/↓: move · enter: details · esc: back",

	"detail.description": "About",
	"detail.menu":        "Recommended menu",
	"detail.load_failed": "Could not load the restaurant.",
	"detail.help":        "↑/↓: scroll · esc: back",

	"field.email":            "Email",
	"field.password":         "Password",
	"field.password_confirm": "Confirm",
	"field.name":             "Name",
	"field.provider":         "Signed up with",
	"field.role":             "Role",
	"field.joined":           "Joined",
	"field.restaurant_name":  "Restaurant",
	"field.review":           "Review",
	"field.submitter":        "Submitter",
	"field.status":           "Status",
	"field.submitted":        "Submitted",

	"provider.local":  "Email",
	"provider.google": "Google",
	"provider.naver":  "Naver",

	"role.user":  "User",
	"role.admin": "Admin",

	"validate.required":          "Please fill in all required fields.",
	"validate.email":             "Please enter a valid email address.",
	"validate.name_length":       "Name must be at least %d characters.",
	"validate.password_length":   "Password must be at least %d characters.",
	"validate.password_mismatch": "Passwords do not match.",
	"validate.category":          "Category must be one of: %s",
	"validate.rating":            "Rating must be a number between 0 and 5.",

	"login.title":         "Log in",
	"login.busy":          "Logging in...",
	"login.return_to":     "You will return to %s after logging in.",
	"login.oauth_divider": "Or continue with",
	"login.oauth_waiting": "Continue in your browser. If it did not open, visit the address below.",
	"login.oauth_help":    "esc: cancel",
	"login.oauth_timeout": "Social login timed out. Please try again.",
	"login.help":          "tab: next field · enter: log in · esc: back",

	"register.title": "Sign up",
	"register.busy":  "Creating account...",
	"register.help":  "tab: next field · enter: sign up · esc: back",

	"dashboard.title":              "Dashboard",
	"dashboard.greeting":           "Welcome, %s!",
	"dashboard.action_list":        "Browse restaurants",
	"dashboard.action_submit":      "Suggest a restaurant",
	"dashboard.action_admin":       "Admin console",
	"dashboard.action_submissions": "Review suggestions",

	"submit.title":                "Suggest a restaurant",
	"submit.subtitle":             "Tell us about a place you like. It is listed after review.",
	"submit.location_placeholder": "e.g. in front of the main gate",
	"submit.menu_placeholder":     "comma separated",
	"submit.done":                 "Thanks! Your suggestion was received.",
	"submit.failed":               "Could not send your suggestion.",
	"submit.sent_count":           "%d suggestion(s) sent this session.",
	"submit.help":                 "tab: next field · enter: submit · esc: back",

	"admin.title":            "Admin console",
	"admin.tab_restaurants":  "Restaurants (%d)",
	"admin.tab_users":        "Users (%d)",
	"admin.users_failed":     "Could not load users.",
	"admin.action_failed":    "The request could not be completed.",
	"admin.confirm_delete":   "Delete %s?",
	"admin.deleted":          "Deleted %s.",
	"admin.created":          "Added %s.",
	"admin.updated":          "Updated %s.",
	"admin.confirm_role":     "Change the role of %s to %s?",
	"admin.role_changed":     "%s is now %s.",
	"admin.self_role":        "You cannot change your own role.",
	"admin.form_create":      "New restaurant",
	"admin.form_edit":        "Edit restaurant",
	"admin.form_help":        "tab: next field · enter: save · esc: cancel",
	"admin.help_restaurants": "tab: users · n: new · e: edit · d: delete · enter: details · r: reload · esc: back",
	"admin.help_users":       "tab: restaurants · t: toggle role · r: reload · esc: back",

	"status.pending":  "Pending",
	"status.approved": "Approved",
	"status.rejected": "Rejected",
	"status.all":      "All",

	"submissions.title":           "Suggestions",
	"submissions.empty":           "No suggestions.",
	"submissions.load_failed":     "Could not load suggestions.",
	"submissions.confirm_approve": "Approve %s and publish it?",
	"submissions.confirm_reject":  "Reject %s?",
	"submissions.confirm_delete":  "Delete the suggestion for %s?",
	"submissions.approved":        "Approved %s.",
	"submissions.approve_partial": "%s was published but the suggestion is still pending. Approving again would publish it twice.",
	"submissions.rejected":        "Rejected %s.",
	"submissions.deleted":         "Deleted the suggestion for %s.",
	"submissions.help":            "tab/←→: status · a: approve · x: reject · d: delete · r: reload · esc: back",

	"notfound.title": "Page not found",
	"notfound.body":  "The screen you asked for does not exist.",
	"notfound.help":  "enter: home · esc: back",
}

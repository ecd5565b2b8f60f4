package bot

// User-facing reply texts. Backend failures all map to one of the generic
// notices here; no error detail ever reaches the chat.
const (
	msgStart = "Hi! Send /login to authenticate, then send me images."

	msgAskEmail     = "Please enter your email address:"
	msgAskPassword  = "Thank you. Now, please enter your password:"
	msgLoginOK      = "Login successful! You can now send me images."
	msgLoginFailed  = "Login failed. Incorrect email or password. Try /login again."
	msgLoginRestart = "Something went wrong, please start /login again."
	msgLoginCancel  = "Login cancelled."

	msgLoggedOut    = "You have been logged out."
	msgNotLoggedIn  = "You are not currently logged in."
	msgLoginFirst   = "Please /login first before sending media."
	msgNothingToDo  = "Nothing to cancel."
	msgPostCancel   = "Post creation cancelled."
	msgGenericError = "Sorry, something went wrong. Please try again."

	msgAskTitle       = "Now, please enter a TITLE:"
	msgAskDescription = "Got it. Now, please enter a short description for this memory:"
	msgAskDate        = "Almost done! When did this media happen? Please enter the date in yyyy/mm/dd format:"
	msgBadDate        = "Invalid date format. Please enter the date in yyyy/mm/dd format:"

	msgAnalyzing       = "Analyzing media for keywords..."
	msgNoKeywords      = "(Could not generate keywords, but will save the post anyway.)"
	msgSkippedKeywords = "(Skipping keyword generation for this media.)"

	msgSaving     = "Saving your memory post..."
	msgSaveFailed = "Sorry, there was an error saving your post to the database."
)

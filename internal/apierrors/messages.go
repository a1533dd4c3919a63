package apierrors

// User-facing message catalog.
const (
	MsgInvalidRoute = "Invalid Route, Please check API Documentation for valid routes."
	MsgInternal     = "internal server error"

	MsgIncompleteInformation = "Please fill out all the required information."
	MsgNonGUCMail            = "Please enter a Valid GUC mail."
	MsgPasswordMismatch      = "Password and password confirmation mismatch."
	MsgInvalidPassword       = "The password must be at least 8 characters and includes at least a digit and a special character."
	MsgInvalidGUCID          = "Please enter a Valid GUC ID."
	MsgUserAlreadyExists     = "User already exists."
	MsgSignupSuccess         = "Signed Up Successfully."

	MsgInvalidCredentials = "Invalid Username/Password."
	MsgMissingCredentials = "Please Enter both the username and password."
	MsgLoginSuccess       = "Logged In Successfully."
	MsgUnauthorized       = "Unauthorized."

	MsgCheckYourEmail       = "You should recieve an email to reset your password, if the email exists."
	MsgInvalidResetToken    = "Invalid reset token."
	MsgPasswordResetSuccess = "Password Changed Successfully."
	MsgLogoutSuccess        = "Logged out successfully."

	MsgEmptyTitle = "The title field is required."
	MsgEmptyWork  = "You must upload an image of your work, add a demo or repo."
	MsgBadRepo    = "The url provided for Repo is invalid."
	MsgBadDemo    = "The url provided for Demo is invalid."
	MsgBadOffset  = "The page offset must be a positive number."
	MsgBadID      = "The requested id is invalid."
	MsgBadUpload  = "The uploaded cover image could not be read."
	MsgBadBody    = "The request body could not be read."

	MsgWorkAdded        = "Item Added!"
	MsgWorkUpdated      = "Item Updated!"
	MsgWorkDeleted      = "Item Deleted!"
	MsgItemNotFound     = "Item not found."
	MsgUserNotFound     = "User not found."
	MsgFileNotFound     = "File not found."
	MsgPermissionDenied = "You do not have permission to perform this action."
)

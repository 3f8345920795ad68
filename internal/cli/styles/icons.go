package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconHeart     = "" //  heart
	IconGo        = "" //  go gopher
	IconArrow     = "" //  arrow right

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	IconFolder   = "" // folder
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconClock    = "" // clock

	IconCursor = "" // chevron-right

	// Layout
	IconWindow  = "" // window
	IconColumns = "" // columns
	IconTree    = "" // tree
	IconExpand  = "" // expand
	IconEye     = "" // eye
	IconEyeOff  = "" // eye-slash
)

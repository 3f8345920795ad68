package entity

// ZenModeVisibility records which side parts were showing before zen mode.
type ZenModeVisibility struct {
	SideBar      bool `json:"sideBar"`
	Panel        bool `json:"panel"`
	AuxiliaryBar bool `json:"auxiliaryBar"`
}

// ZenModeExitInfo is captured when zen mode turns on and consumed once when
// it turns off.
type ZenModeExitInfo struct {
	TransitionedToCenteredEditorLayout  bool              `json:"transitionedToCenteredEditorLayout"`
	TransitionedToFullScreen            bool              `json:"transitionedToFullScreen"`
	HandleNotificationsDoNotDisturbMode bool              `json:"handleNotificationsDoNotDisturbMode"`
	WasVisible                          ZenModeVisibility `json:"wasVisible"`
}

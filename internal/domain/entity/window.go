package entity

// WindowID identifies a top-level window.
type WindowID int

// MainWindowID is the id of the window that hosts the workbench grid.
const MainWindowID WindowID = 1

// Dimension is a width/height pair in pixels.
type Dimension struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Shrink returns the dimension reduced by d on both axes, floored at zero.
func (d Dimension) Shrink(by float64) Dimension {
	return Dimension{Width: max(0, d.Width-by), Height: max(0, d.Height-by)}
}

// ContainerOffset is how far below the top of a window content may start.
type ContainerOffset struct {
	Top          float64 `json:"top"`
	QuickPickTop float64 `json:"quickPickTop"`
}

// LayoutDescriptor summarises the visible arrangement at startup.
type LayoutDescriptor struct {
	ActivityBarVisible  bool     `json:"activityBarVisible"`
	SideBarVisible      bool     `json:"sideBarVisible"`
	AuxiliaryBarVisible bool     `json:"auxiliaryBarVisible"`
	PanelVisible        bool     `json:"panelVisible"`
	StatusBarVisible    bool     `json:"statusBarVisible"`
	SideBarPosition     Position `json:"sideBarPosition"`
	PanelPosition       Position `json:"panelPosition"`
}

package keymap

// Default shortcut definitions for the player shell. Handlers are
// bound by the shell at registration time; the definitions live here
// so help rendering and the shell register from the same table.
var (
	DefFocusSearch = Definition{Key: EscapeHatchKey, Description: "Focus search", Category: CategoryGlobal}
	DefHelp        = Definition{Key: "?", Description: "Show shortcuts", Category: CategoryGlobal}
	DefQuit        = Definition{Key: "q", Description: "Quit", Category: CategoryGlobal}

	DefPlayPause = Definition{Key: "space", Description: "Play/pause", Category: CategoryPlayback}
	DefStop      = Definition{Key: "s", Description: "Stop", Category: CategoryPlayback}
	DefNextTrack = Definition{Key: "pgdown", Description: "Next track", Category: CategoryPlayback}
	DefPrevTrack = Definition{Key: "pgup", Description: "Previous track", Category: CategoryPlayback}
	DefSeekBack  = Definition{Key: "left", Shift: true, Description: "Seek -5s", Category: CategoryPlayback}
	DefSeekFwd   = Definition{Key: "right", Shift: true, Description: "Seek +5s", Category: CategoryPlayback}
	DefVolumeUp  = Definition{Key: "+", Description: "Volume up", Category: CategoryPlayback}
	DefVolumeDn  = Definition{Key: "-", Description: "Volume down", Category: CategoryPlayback}
	DefMute      = Definition{Key: "m", Description: "Toggle mute", Category: CategoryPlayback}

	DefViewLibrary = Definition{Key: "1", Description: "Library view", Category: CategoryNavigation}
	DefViewQueue   = Definition{Key: "2", Description: "Queue view", Category: CategoryNavigation}
	DefViewPlaying = Definition{Key: "3", Description: "Now playing view", Category: CategoryNavigation}
	DefMoveDown    = Definition{Key: "j", Description: "Move down", Category: CategoryNavigation}
	DefMoveUp      = Definition{Key: "k", Description: "Move up", Category: CategoryNavigation}

	DefFavorite = Definition{Key: "f", Description: "Toggle favorite", Category: CategoryLibrary}
	DefRefresh  = Definition{Key: "r", Description: "Refresh library", Category: CategoryLibrary}

	DefQueueAdd    = Definition{Key: "a", Description: "Add to queue", Category: CategoryQueue}
	DefQueueRemove = Definition{Key: "d", Description: "Remove from queue", Category: CategoryQueue}
	DefQueueClear  = Definition{Key: "c", Description: "Clear queue", Category: CategoryQueue}
)

// Defaults lists the default definitions in help display order.
var Defaults = []Definition{
	DefFocusSearch,
	DefHelp,
	DefQuit,
	DefPlayPause,
	DefStop,
	DefNextTrack,
	DefPrevTrack,
	DefSeekBack,
	DefSeekFwd,
	DefVolumeUp,
	DefVolumeDn,
	DefMute,
	DefViewLibrary,
	DefViewQueue,
	DefViewPlaying,
	DefMoveDown,
	DefMoveUp,
	DefFavorite,
	DefRefresh,
	DefQueueAdd,
	DefQueueRemove,
	DefQueueClear,
}

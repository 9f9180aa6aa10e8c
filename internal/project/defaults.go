package project

import "time"

// Returns the default configuration, matching the Item Editor Qt6 project.
func Default() *Config {
	return &Config{
		App:       "ItemEditor",
		Plugins:   []string{"PluginOne", "PluginTwo", "PluginThree"},
		Packages:  defaultPackages(),
		Generator: "Unix Makefiles",
		BuildType: "Release",
		Timeouts: Timeouts{
			Update:    Duration(2 * time.Minute),
			Install:   Duration(10 * time.Minute),
			Configure: Duration(2 * time.Minute),
			Build:     Duration(10 * time.Minute),
		},
	}
}

// System packages required to build the project on Ubuntu.
func defaultPackages() []string {
	return []string{
		"build-essential",
		"cmake",
		"git",
		"pkg-config",
		"qt6-base-dev",
		"qt6-tools-dev",
		"qt6-tools-dev-tools",
		"libqt6core6",
		"libqt6gui6",
		"libqt6widgets6",
		"libqt6network6",
		"libqt6xml6",
		"qt6-qpa-plugins",
		"libgl1-mesa-dev",
		"libglu1-mesa-dev",
		"libxkbcommon-dev",
		"libxcb-xinerama0-dev",
		"libxcb-cursor-dev",
		"libfontconfig1-dev",
		"libfreetype6-dev",
		"libx11-dev",
		"libxext-dev",
		"libxfixes-dev",
		"libxi-dev",
		"libxrender-dev",
		"libxcb1-dev",
		"libx11-xcb-dev",
		"libxcb-glx0-dev",
		"libxcb-keysyms1-dev",
		"libxcb-image0-dev",
		"libxcb-shm0-dev",
		"libxcb-icccm4-dev",
		"libxcb-sync-dev",
		"libxcb-xfixes0-dev",
		"libxcb-shape0-dev",
		"libxcb-randr0-dev",
		"libxcb-render-util0-dev",
	}
}

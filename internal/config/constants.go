package config

import "time"

// Base application details
const AppName = "mathtag"
const ConfigDirName = "mathtag"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "mathtag.log"
const DefaultExportFileName = "export.txt"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Export
const DefaultAutoExportInterval = 30 * time.Second
const MinAutoExportInterval = time.Second
const ExportTimeout = 5 * time.Second

const SystemClipboard = true

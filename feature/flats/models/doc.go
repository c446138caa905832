// Package models defines the flat record tracked by the monitor, its derived room
// category, and the explicit list of fields compared between snapshots.
package models

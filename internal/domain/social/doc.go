// Package social contains the content domain: posts, comments,
// stories, societies, user blocks and notifications.
package social

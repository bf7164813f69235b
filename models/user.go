package models

// User holds per-user data. ID is the identity provider's UID, not an ObjectID.
type User struct {
	ID              string   `bson:"_id" json:"id"`
	SelectedCourses []string `bson:"selectedCourses" json:"selectedCourses"`
}

package services

import "gosiwon-finder/models"

// AvailableRooms flattens every room open for move-in across records, in
// catalog order then room order.
func AvailableRooms(records []*models.PropertyRecord) []models.AvailableRoom {
	out := make([]models.AvailableRoom, 0)
	for _, p := range records {
		if p == nil {
			continue
		}
		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		for _, room := range p.Rooms {
			if room.Status != models.RoomAvailable {
				continue
			}
			out = append(out, models.AvailableRoom{
				RoomID:           room.ID,
				PropertyID:       p.ID,
				PropertyName:     p.Name,
				PropertyLocation: p.Location,
				PropertyRating:   p.Rating,
				PropertyImage:    image,
				RoomType:         room.Type,
				Area:             room.Area,
				Price:            room.Price,
				Deposit:          room.Deposit,
				Facilities:       append([]string(nil), room.Facilities...),
			})
		}
	}
	return out
}

package mysql

// -----------------------------------------------------------------------------
// WRITE QUERIES (seeder)
// -----------------------------------------------------------------------------

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, location, rating, price, description, image)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name        = VALUES(name),
  location    = VALUES(location),
  rating      = VALUES(rating),
  price       = VALUES(price),
  description = VALUES(description),
  image       = VALUES(image)
`

const upsertRoomSQL = `
INSERT INTO rooms
  (id, hotel_id, name, price, adults, children, size_sqm, bed_type, amenities, image)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  hotel_id  = VALUES(hotel_id),
  name      = VALUES(name),
  price     = VALUES(price),
  adults    = VALUES(adults),
  children  = VALUES(children),
  size_sqm  = VALUES(size_sqm),
  bed_type  = VALUES(bed_type),
  amenities = VALUES(amenities),
  image     = VALUES(image)
`

const upsertReviewSQL = `
INSERT INTO reviews
  (id, hotel_id, author, rating, title, ` + "`text`" + `, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP))
ON DUPLICATE KEY UPDATE
  author = VALUES(author),
  rating = VALUES(rating),
  title  = VALUES(title),
  ` + "`text`" + ` = VALUES(` + "`text`" + `)
`

const insertUserSQL = `
INSERT INTO users
  (id, first_name, last_name, email, password_hash, phone,
   street, city, state, zip_code, country,
   role, profile_picture, verified,
   currency, language, notifications,
   google_id, facebook_id, created_at, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const insertBookingSQL = `
INSERT INTO bookings
  (id, user_id, hotel_id, room_id, check_in, check_out,
   adults, children, price, tax, total, status, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getHotelSQL = `
SELECT id, name, location, rating, price, description, image
FROM hotels
WHERE id = ?
`

const listHotelsSQL = `
SELECT id, name, location, rating, price, description, image
FROM hotels
ORDER BY id
`

const getRoomSQL = `
SELECT id, hotel_id, name, price, adults, children, size_sqm, bed_type, amenities, image
FROM rooms
WHERE id = ?
`

// Rooms with a NULL hotel_id are shared inventory offered by every hotel.
const listRoomsSQL = `
SELECT id, hotel_id, name, price, adults, children, size_sqm, bed_type, amenities, image
FROM rooms
WHERE hotel_id IS NULL OR hotel_id = ?
ORDER BY id
`

const listReviewsSQL = `
SELECT id, hotel_id, author, rating, title, ` + "`text`" + `, created_at
FROM reviews
WHERE hotel_id = ?
ORDER BY created_at DESC, id DESC
`

const listRecentReviewsSQL = `
SELECT id, hotel_id, author, rating, title, ` + "`text`" + `, created_at
FROM reviews
ORDER BY created_at DESC, id DESC
LIMIT ?
`

const getUserByEmailSQL = `
SELECT id, first_name, last_name, email, password_hash, phone,
       street, city, state, zip_code, country,
       role, profile_picture, verified,
       currency, language, notifications,
       google_id, facebook_id, created_at, updated_at
FROM users
WHERE email = LOWER(?)
`

const getUserByIDSQL = `
SELECT id, first_name, last_name, email, password_hash, phone,
       street, city, state, zip_code, country,
       role, profile_picture, verified,
       currency, language, notifications,
       google_id, facebook_id, created_at, updated_at
FROM users
WHERE id = ?
`

const listBookingsByUserSQL = `
SELECT id, user_id, hotel_id, room_id, check_in, check_out,
       adults, children, price, tax, total, status, created_at
FROM bookings
WHERE user_id = ?
ORDER BY created_at DESC, id DESC
`

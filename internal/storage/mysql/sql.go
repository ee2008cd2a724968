package mysql

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, location, province, description, rating, review_count,
   price_per_night, original_price, stars, images, amenities, policies,
   featured, promotion)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name            = VALUES(name),
  location        = VALUES(location),
  province        = VALUES(province),
  description     = VALUES(description),
  rating          = VALUES(rating),
  review_count    = VALUES(review_count),
  price_per_night = VALUES(price_per_night),
  original_price  = VALUES(original_price),
  stars           = VALUES(stars),
  images          = VALUES(images),
  amenities       = VALUES(amenities),
  policies        = VALUES(policies),
  featured        = VALUES(featured),
  promotion       = VALUES(promotion),
  updated_at      = CURRENT_TIMESTAMP
`

const upsertRoomSQL = `
INSERT INTO rooms
  (hotel_id, id, name, description, price_per_night, max_guests, bed_type,
   size_sqm, amenities, image)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name            = VALUES(name),
  description     = VALUES(description),
  price_per_night = VALUES(price_per_night),
  max_guests      = VALUES(max_guests),
  bed_type        = VALUES(bed_type),
  size_sqm        = VALUES(size_sqm),
  amenities       = VALUES(amenities),
  image           = VALUES(image)
`

const hotelColumns = `
  id, name, location, province, description, rating, review_count,
  price_per_night, original_price, stars, images, amenities, policies,
  featured, promotion`

const getHotelSQL = `SELECT` + hotelColumns + `
FROM hotels
WHERE id = ?
`

const listHotelsSQL = `SELECT` + hotelColumns + `
FROM hotels
ORDER BY id
`

const roomColumns = `
  hotel_id, id, name, description, price_per_night, max_guests, bed_type,
  size_sqm, amenities, image`

const listRoomsForHotelSQL = `SELECT` + roomColumns + `
FROM rooms
WHERE hotel_id = ?
ORDER BY id
`

const listAllRoomsSQL = `SELECT` + roomColumns + `
FROM rooms
ORDER BY hotel_id, id
`

// Catalog tables. Slice-valued fields are stored as JSON text; the catalog is
// small and read whole, so no per-field indexing is needed.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS hotels (
  id              VARCHAR(32)  NOT NULL,
  name            VARCHAR(255) NOT NULL,
  location        VARCHAR(255) NOT NULL,
  province        VARCHAR(128) NOT NULL,
  description     TEXT         NOT NULL,
  rating          DOUBLE       NOT NULL DEFAULT 0,
  review_count    INT          NOT NULL DEFAULT 0,
  price_per_night INT          NOT NULL,
  original_price  INT          NULL,
  stars           INT          NOT NULL,
  images          JSON         NULL,
  amenities       JSON         NULL,
  policies        JSON         NULL,
  featured        TINYINT(1)   NOT NULL DEFAULT 0,
  promotion       VARCHAR(255) NULL,
  updated_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  PRIMARY KEY (id)
) CHARACTER SET utf8mb4;

CREATE TABLE IF NOT EXISTS rooms (
  hotel_id        VARCHAR(32)  NOT NULL,
  id              VARCHAR(32)  NOT NULL,
  name            VARCHAR(255) NOT NULL,
  description     TEXT         NOT NULL,
  price_per_night INT          NOT NULL,
  max_guests      INT          NOT NULL DEFAULT 2,
  bed_type        VARCHAR(128) NOT NULL DEFAULT '',
  size_sqm        DOUBLE       NOT NULL DEFAULT 0,
  amenities       JSON         NULL,
  image           VARCHAR(512) NOT NULL DEFAULT '',
  PRIMARY KEY (hotel_id, id),
  CONSTRAINT fk_rooms_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id)
) CHARACTER SET utf8mb4;
`

package mysql

const getAggregateSQL = `
SELECT avg_rating, review_count
FROM owner_ratings
WHERE owner_key = ?
`

// Locks the owner's row for the read-modify-write in SubmitRating.
const lockAggregateSQL = getAggregateSQL + "FOR UPDATE\n"

const upsertAggregateSQL = `
INSERT INTO owner_ratings (owner_key, avg_rating, review_count)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
  avg_rating   = VALUES(avg_rating),
  review_count = VALUES(review_count)
`

// Existing aggregates win over seeds.
const seedAggregateSQL = `
INSERT IGNORE INTO owner_ratings (owner_key, avg_rating, review_count)
VALUES (?, ?, ?)
`

const insertSubmissionSQL = `
INSERT INTO listing_submissions
  (id, listing_type, category, title, price, location, description,
   amenities, images, owner_name, owner_contact, owner_id)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const getSubmissionSQL = `
SELECT id, listing_type, category, title, price, location, description,
       amenities, images, owner_name, owner_contact, owner_id
FROM listing_submissions
WHERE id = ?
`

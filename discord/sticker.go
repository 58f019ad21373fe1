package discord

// sticker.go represents all structures for a sticker.

// StickerType represents the type of sticker.
type StickerType uint16

const (
	StickerTypeStandard StickerType = 1 + iota
	StickerTypeGuild
)

// StickerFormatType represents the sticker format.
type StickerFormatType uint16

const (
	StickerFormatTypePNG StickerFormatType = 1 + iota
	StickerFormatTypeAPNG
	StickerFormatTypeLOTTIE
)

// Sticker represents a sticker object.
type Sticker struct {
	PackID      *Snowflake        `json:"pack_id,omitempty"`
	GuildID     *Snowflake        `json:"guild_id,omitempty"`
	User        *User             `json:"user,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Tags        string            `json:"tags"`
	ID          Snowflake         `json:"id"`
	SortValue   int32             `json:"sort_value"`
	Type        StickerType       `json:"type"`
	FormatType  StickerFormatType `json:"format_type"`
	Available   bool              `json:"available"`
}

// StickerPack represents a pack of standard stickers.
type StickerPack struct {
	CoverStickerID *Snowflake `json:"cover_sticker_id,omitempty"`
	BannerAssetID  *Snowflake `json:"banner_asset_id,omitempty"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Stickers       []Sticker  `json:"stickers"`
	ID             Snowflake  `json:"id"`
	SKUID          Snowflake  `json:"sku_id"`
}

// StickerParams represents the arguments to modify a guild sticker.
type StickerParams struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Tags        *string `json:"tags,omitempty"`
}

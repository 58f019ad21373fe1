package discord

// endpoints.go contains the route builders for all discord endpoints
// used throughout the package. Routes are relative to /api/{version}.

var (
	EndpointGateway    = "/gateway"
	EndpointGatewayBot = EndpointGateway + "/bot"

	EndpointGuilds   = "/guilds"
	EndpointChannels = "/channels"
	EndpointUsers    = "/users"
	EndpointWebhooks = "/webhooks"
	EndpointStickers = "/stickers"
	EndpointInvites  = "/invites"

	EndpointVoiceRegions = "/voice/regions"

	EndpointUser         = func(uID string) string { return EndpointUsers + "/" + uID }
	EndpointUserChannels = func(uID string) string { return EndpointUser(uID) + "/channels" }
	EndpointUserGuilds   = func(uID string) string { return EndpointUser(uID) + "/guilds" }
	EndpointUserGuild    = func(uID, gID string) string { return EndpointUserGuilds(uID) + "/" + gID }

	EndpointGuild                = func(gID string) string { return EndpointGuilds + "/" + gID }
	EndpointGuildPreview         = func(gID string) string { return EndpointGuild(gID) + "/preview" }
	EndpointGuildChannels        = func(gID string) string { return EndpointGuild(gID) + "/channels" }
	EndpointGuildMembers         = func(gID string) string { return EndpointGuild(gID) + "/members" }
	EndpointGuildMembersSearch   = func(gID string) string { return EndpointGuildMembers(gID) + "/search" }
	EndpointGuildMember          = func(gID, uID string) string { return EndpointGuildMembers(gID) + "/" + uID }
	EndpointGuildMemberSelf      = func(gID string) string { return EndpointGuildMember(gID, "@me") }
	EndpointGuildMemberRole      = func(gID, uID, rID string) string { return EndpointGuildMember(gID, uID) + "/roles/" + rID }
	EndpointGuildBans            = func(gID string) string { return EndpointGuild(gID) + "/bans" }
	EndpointGuildBan             = func(gID, uID string) string { return EndpointGuildBans(gID) + "/" + uID }
	EndpointGuildRoles           = func(gID string) string { return EndpointGuild(gID) + "/roles" }
	EndpointGuildRole            = func(gID, rID string) string { return EndpointGuildRoles(gID) + "/" + rID }
	EndpointGuildPrune           = func(gID string) string { return EndpointGuild(gID) + "/prune" }
	EndpointGuildInvites         = func(gID string) string { return EndpointGuild(gID) + "/invites" }
	EndpointGuildWebhooks        = func(gID string) string { return EndpointGuild(gID) + "/webhooks" }
	EndpointGuildVanityURL       = func(gID string) string { return EndpointGuild(gID) + "/vanity-url" }
	EndpointGuildAuditLogs       = func(gID string) string { return EndpointGuild(gID) + "/audit-logs" }
	EndpointGuildEmojis          = func(gID string) string { return EndpointGuild(gID) + "/emojis" }
	EndpointGuildEmoji           = func(gID, eID string) string { return EndpointGuildEmojis(gID) + "/" + eID }
	EndpointGuildStickers        = func(gID string) string { return EndpointGuild(gID) + "/stickers" }
	EndpointGuildSticker         = func(gID, sID string) string { return EndpointGuildStickers(gID) + "/" + sID }
	EndpointGuildVoiceRegions    = func(gID string) string { return EndpointGuild(gID) + "/regions" }
	EndpointGuildActiveThreads   = func(gID string) string { return EndpointGuild(gID) + "/threads/active" }
	EndpointGuildScheduledEvents = func(gID string) string { return EndpointGuild(gID) + "/scheduled-events" }

	EndpointChannel                       = func(cID string) string { return EndpointChannels + "/" + cID }
	EndpointChannelPermissions            = func(cID string) string { return EndpointChannel(cID) + "/permissions" }
	EndpointChannelPermission             = func(cID, tID string) string { return EndpointChannelPermissions(cID) + "/" + tID }
	EndpointChannelInvites                = func(cID string) string { return EndpointChannel(cID) + "/invites" }
	EndpointChannelTyping                 = func(cID string) string { return EndpointChannel(cID) + "/typing" }
	EndpointChannelPins                   = func(cID string) string { return EndpointChannel(cID) + "/pins" }
	EndpointChannelPin                    = func(cID, mID string) string { return EndpointChannelPins(cID) + "/" + mID }
	EndpointChannelFollow                 = func(cID string) string { return EndpointChannel(cID) + "/followers" }
	EndpointChannelWebhooks               = func(cID string) string { return EndpointChannel(cID) + "/webhooks" }
	EndpointChannelMessages               = func(cID string) string { return EndpointChannel(cID) + "/messages" }
	EndpointChannelMessage                = func(cID, mID string) string { return EndpointChannelMessages(cID) + "/" + mID }
	EndpointChannelMessageCrosspost       = func(cID, mID string) string { return EndpointChannelMessage(cID, mID) + "/crosspost" }
	EndpointChannelMessagesBulkDelete     = func(cID string) string { return EndpointChannelMessages(cID) + "/bulk-delete" }
	EndpointChannelMessageReactions       = func(cID, mID string) string { return EndpointChannelMessage(cID, mID) + "/reactions" }
	EndpointChannelMessageReaction        = func(cID, mID, eID string) string { return EndpointChannelMessageReactions(cID, mID) + "/" + eID }
	EndpointChannelMessageReactionSelf    = func(cID, mID, eID string) string { return EndpointChannelMessageReaction(cID, mID, eID) + "/@me" }
	EndpointChannelMessageReactionUser    = func(cID, mID, eID, uID string) string { return EndpointChannelMessageReaction(cID, mID, eID) + "/" + uID }
	EndpointChannelMessageThread          = func(cID, mID string) string { return EndpointChannelMessage(cID, mID) + "/threads" }
	EndpointChannelThreads                = func(cID string) string { return EndpointChannel(cID) + "/threads" }
	EndpointChannelPublicArchivedThreads  = func(cID string) string { return EndpointChannelThreads(cID) + "/archived/public" }
	EndpointChannelPrivateArchivedThreads = func(cID string) string { return EndpointChannelThreads(cID) + "/archived/private" }
	EndpointThreadMembers                 = func(cID string) string { return EndpointChannel(cID) + "/thread-members" }
	EndpointThreadMember                  = func(cID, uID string) string { return EndpointThreadMembers(cID) + "/" + uID }
	EndpointThreadMemberSelf              = func(cID string) string { return EndpointThreadMember(cID, "@me") }

	EndpointWebhook              = func(wID string) string { return EndpointWebhooks + "/" + wID }
	EndpointWebhookToken         = func(wID, token string) string { return EndpointWebhook(wID) + "/" + token }
	EndpointWebhookMessage       = func(wID, token, mID string) string { return EndpointWebhookToken(wID, token) + "/messages/" + mID }
	EndpointWebhookGithub        = func(wID, token string) string { return EndpointWebhookToken(wID, token) + "/github" }
	EndpointWebhookSlack         = func(wID, token string) string { return EndpointWebhookToken(wID, token) + "/slack" }
	EndpointInvite               = func(code string) string { return EndpointInvites + "/" + code }
	EndpointSticker              = func(sID string) string { return EndpointStickers + "/" + sID }
	EndpointNitroStickerPacks    = "/sticker-packs"
	EndpointStageInstances       = "/stage-instances"
	EndpointStageInstance        = func(cID string) string { return EndpointStageInstances + "/" + cID }
	EndpointGuildScheduledEvent  = func(gID, eID string) string { return EndpointGuildScheduledEvents(gID) + "/" + eID }
	EndpointScheduledEventUsers  = func(gID, eID string) string { return EndpointGuildScheduledEvent(gID, eID) + "/users" }
	EndpointApplicationGlobalCommands = func(aID string) string { return "/applications/" + aID + "/commands" }
	EndpointApplicationGlobalCommand  = func(aID, cID string) string { return EndpointApplicationGlobalCommands(aID) + "/" + cID }
	EndpointApplicationGuildCommands  = func(aID, gID string) string { return "/applications/" + aID + "/guilds/" + gID + "/commands" }
	EndpointApplicationGuildCommand   = func(aID, gID, cID string) string { return EndpointApplicationGuildCommands(aID, gID) + "/" + cID }

	EndpointInteractionResponse = func(iID, token string) string { return "/interactions/" + iID + "/" + token + "/callback" }
	EndpointInteractionResponseActions = func(aID, token string) string {
		return EndpointWebhookMessage(aID, token, "@original")
	}
	EndpointFollowupMessage = func(aID, token string) string { return EndpointWebhookToken(aID, token) }
)

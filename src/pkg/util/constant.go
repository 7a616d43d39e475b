package util

// GroupIdCommand is the text message that asks the bot for the current group ID.
const GroupIdCommand = "群組ID"

const GroupIdReplyTemplate = "這個群組的 ID 是：\n%s"

const GroupOnlyReply = "這個指令只能在群組中使用喔！"

const HomeMessage = "伺服器運行中！"

const OkMessage = "OK"

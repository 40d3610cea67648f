package quotepdf

// Fixed UI labels of the generated document, as primary/secondary pairs like
// every other user-facing string.
var (
	labelTitle       = LocalizedText{Primary: "報價單", Secondary: "QUOTATION"}
	labelNumber      = LocalizedText{Primary: "報價單號", Secondary: "Quotation No."}
	labelIssueDate   = LocalizedText{Primary: "報價日期", Secondary: "Issue Date"}
	labelExpiryDate  = LocalizedText{Primary: "有效期限", Secondary: "Valid Until"}
	labelCustomer    = LocalizedText{Primary: "客戶名稱", Secondary: "Customer"}
	labelDescription = LocalizedText{Primary: "項目說明", Secondary: "Description"}
	labelQuantity    = LocalizedText{Primary: "數量", Secondary: "Qty"}
	labelUnitPrice   = LocalizedText{Primary: "單價", Secondary: "Unit Price"}
	labelAmount      = LocalizedText{Primary: "金額", Secondary: "Amount"}
	labelSubtotal    = LocalizedText{Primary: "小計", Secondary: "Subtotal"}
	labelTax         = LocalizedText{Primary: "稅金", Secondary: "Tax"}
	labelTotal       = LocalizedText{Primary: "總計", Secondary: "Total"}
	labelTerms       = LocalizedText{Primary: "付款條件", Secondary: "Payment Terms"}
	labelTerm        = LocalizedText{Primary: "期數", Secondary: "Term"}
	labelPercent     = LocalizedText{Primary: "比例", Secondary: "Percent"}
	labelDueDate     = LocalizedText{Primary: "到期日", Secondary: "Due Date"}
	labelNotes       = LocalizedText{Primary: "備註", Secondary: "Notes"}
	labelBank        = LocalizedText{Primary: "匯款資訊", Secondary: "Bank Details"}
	labelBankName    = LocalizedText{Primary: "銀行", Secondary: "Bank"}
	labelBankAccount = LocalizedText{Primary: "帳號", Secondary: "Account"}
	labelBankCode    = LocalizedText{Primary: "代碼", Secondary: "Bank Code"}
)

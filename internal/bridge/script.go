package bridge

import "fmt"

// collectorScript walks every element of the page, records whether it has a
// layout box and its computed colors, and emits the result back to Go.
func collectorScript(requestID string) string {
	return fmt.Sprintf(`(function () {
	const requestId = %q;
	const eventName = %q;
	const emit = function (payload) {
		if (window.wails && window.wails.Events) {
			window.wails.Events.Emit(eventName, payload);
		}
	};
	try {
		const elements = [];
		for (const el of document.querySelectorAll("*")) {
			const style = window.getComputedStyle(el);
			elements.push({
				rendered: el.getClientRects().length > 0,
				style: {
					background: style.backgroundColor,
					text: style.color,
					border: style.borderTopColor
				}
			});
		}
		emit({ requestId: requestId, title: document.title, url: location.href, elements: elements });
	} catch (err) {
		emit({ requestId: requestId, error: String(err && err.message ? err.message : err) });
	}
})();`, requestID, EventSampleResult)
}

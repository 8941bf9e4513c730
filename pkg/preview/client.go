package preview

// clientScript forwards DOM events on elements carrying data-hid and
// data-on-<event> markers, then swaps in the form the server sends back.
// Focus and caret position survive the swap when the focused element keeps
// its id.
const clientScript = `(function(){
var app=document.getElementById("app");
var proto=location.protocol==="https:"?"wss:":"ws:";
var ws=new WebSocket(proto+"//"+location.host+"/ws");
var names={focusin:"focus",focusout:"blur"},restoring=false;
function send(e){
  if(restoring)return;
  var el=e.target.closest?e.target.closest("[data-hid]"):null;
  if(!el)return;
  var ev=names[e.type]||e.type;
  if(el.getAttribute("data-on-"+ev)!=="true")return;
  if(ev==="click"&&el.tagName==="BUTTON")e.preventDefault();
  var v=el.type==="checkbox"?String(el.checked):(el.value||"");
  ws.send(JSON.stringify({hid:el.getAttribute("data-hid"),event:ev,value:v}));
}
["click","input","change","focusin","focusout"].forEach(function(t){app.addEventListener(t,send,true)});
ws.onmessage=function(m){
  var f=JSON.parse(m.data);
  var a=document.activeElement,id=a&&a.id,s=null,en=null;
  try{s=a.selectionStart;en=a.selectionEnd}catch(_){}
  restoring=true;
  app.innerHTML=f.html;
  if(id){var n=document.getElementById(id);if(n){n.focus();try{if(s!==null)n.setSelectionRange(s,en)}catch(_){}}}
  restoring=false;
  if(f.error)console.warn("formkit:",f.error);
};
ws.onclose=function(){app.setAttribute("data-disconnected","true")};
})();`
